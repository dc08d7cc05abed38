package repositories

import (
	"encoding/json"
	"fmt"

	"kampala_finance_backend/internal/models"
	"kampala_finance_backend/pkg/utils"
)

// migrateV0 upgrades a document written before schema versioning existed.
// Those documents keep plaintext passwords under users.<name>.password and
// may carry debtors whose status was never derived from their balance.
func (r *documentRepository) migrateV0(raw []byte, doc *models.Document) error {
	var legacy struct {
		Users map[string]struct {
			Password string `json:"password"`
		} `json:"users"`
	}
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	migrated := 0
	for username, lu := range legacy.Users {
		user, ok := doc.Users[username]
		if !ok || user.PasswordHash != "" || lu.Password == "" {
			continue
		}
		if r.hash == nil {
			return fmt.Errorf("%w: legacy password for %q cannot be hashed", ErrMalformedDocument, username)
		}
		hashed, err := r.hash(lu.Password)
		if err != nil {
			return fmt.Errorf("migrating password of %q: %w", username, err)
		}
		user.PasswordHash = hashed
		doc.Users[username] = user
		migrated++
	}

	for i := range doc.Debtors {
		doc.Debtors[i].Derive()
	}

	doc.SchemaVersion = models.CurrentSchemaVersion
	utils.LogInfo("Migrated legacy document", map[string]interface{}{
		"from_version":      0,
		"to_version":        models.CurrentSchemaVersion,
		"passwords_hashed":  migrated,
		"debtors_rederived": len(doc.Debtors),
	})
	return nil
}

// normalize replaces absent collections with empty ones so callers never see nil.
func normalize(doc *models.Document) {
	if doc.Users == nil {
		doc.Users = map[string]models.UserRecord{}
	}
	if doc.Transactions == nil {
		doc.Transactions = []models.Transaction{}
	}
	if doc.Debtors == nil {
		doc.Debtors = []models.Debtor{}
	}
	if doc.Inventory == nil {
		doc.Inventory = []models.InventoryItem{}
	}
	if doc.Financials == nil {
		doc.Financials = []models.MonthlySummary{}
	}
	if doc.Settings == nil {
		doc.Settings = &models.Settings{}
	}
	doc.SchemaVersion = models.CurrentSchemaVersion
}
