package services

import (
	"context"

	"kampala_finance_backend/internal/config"
	"kampala_finance_backend/internal/database"
	"kampala_finance_backend/internal/repositories"
)

// OpenDataStore opens the configured slot and builds a store over it.
// The returned function closes the slot's connection.
func OpenDataStore(ctx context.Context, cfg *config.Config) (DataStore, func() error, error) {
	slot, closeSlot, err := database.OpenSlot(ctx, cfg.Storage)
	if err != nil {
		return nil, nil, err
	}
	repo := repositories.NewDocumentRepository(slot, PasswordHasher(cfg.Auth.BcryptCost))
	store := NewDataStore(repo, StoreOptions{
		BcryptCost:      cfg.Auth.BcryptCost,
		SeedPasswords:   cfg.Seed.Passwords,
		DefaultPassword: cfg.Seed.DefaultPassword,
	})
	return store, closeSlot, nil
}
