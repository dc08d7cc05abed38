package services

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"kampala_finance_backend/internal/database"
	"kampala_finance_backend/internal/models"
	"kampala_finance_backend/internal/repositories"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

var testNow = time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)

type testEnv struct {
	store DataStore
	slot  *database.FileSlot
	ctx   context.Context
}

// newTestEnv returns a store over an empty in-memory slot.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	slot := database.NewMemorySlot(models.DefaultStorageKey)
	repo := repositories.NewDocumentRepository(slot, PasswordHasher(bcrypt.MinCost))
	store := NewDataStore(repo, StoreOptions{
		BcryptCost:      bcrypt.MinCost,
		SeedPasswords:   map[string]string{"john": "john123", "mary": "mary123"},
		DefaultPassword: "changeme",
		Rand:            rand.New(rand.NewPCG(1, 2)),
		Now:             func() time.Time { return testNow },
	})
	return &testEnv{store: store, slot: slot, ctx: context.Background()}
}

// newInitializedEnv returns a store holding a freshly generated document.
func newInitializedEnv(t *testing.T) *testEnv {
	t.Helper()
	env := newTestEnv(t)
	if err := env.store.Initialize(env.ctx); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	return env
}

func (e *testEnv) slotBytes(t *testing.T) []byte {
	t.Helper()
	data, err := e.slot.Read(e.ctx)
	if err != nil {
		t.Fatalf("slot.Read() error = %v", err)
	}
	return data
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ptr[T any](v T) *T {
	return &v
}
