package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"kampala_finance_backend/internal/models"
)

// withoutStamp renders a document as JSON with lastUpdated cleared.
func withoutStamp(t *testing.T, doc *models.Document) string {
	t.Helper()
	c := *doc
	c.LastUpdated = time.Time{}
	data, err := json.Marshal(&c)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestExportImportRoundTrip(t *testing.T) {
	env := newInitializedEnv(t)
	before, _ := env.store.Load(env.ctx)

	text, err := env.store.ExportData(env.ctx)
	if err != nil {
		t.Fatalf("ExportData() error = %v", err)
	}
	if !strings.Contains(text, "\n  \"transactions\"") {
		t.Error("export is not indented")
	}
	if err := env.store.ImportData(env.ctx, text); err != nil {
		t.Fatalf("ImportData() error = %v", err)
	}

	after, _ := env.store.Load(env.ctx)
	if withoutStamp(t, before) != withoutStamp(t, after) {
		t.Error("export followed by import changed the document")
	}
}

func TestImportDataMalformed(t *testing.T) {
	env := newInitializedEnv(t)
	before := env.slotBytes(t)

	for _, text := range []string{"", "not json", "null", `{"transactions": 5}`} {
		if err := env.store.ImportData(env.ctx, text); !errors.Is(err, ErrMalformedInput) {
			t.Errorf("ImportData(%q) error = %v, want ErrMalformedInput", text, err)
		}
	}
	if !bytes.Equal(before, env.slotBytes(t)) {
		t.Error("failed import changed the stored document")
	}
}

func TestCreateBackupAndRestore(t *testing.T) {
	env := newInitializedEnv(t)
	original, _ := env.store.Load(env.ctx)

	backup, err := env.store.CreateBackup(env.ctx)
	if err != nil {
		t.Fatalf("CreateBackup() error = %v", err)
	}
	if backup.Version != models.BackupFormatVersion || !backup.BackedUpAt.Equal(testNow) {
		t.Errorf("CreateBackup() stamped %s %s", backup.Version, backup.BackedUpAt)
	}
	if got := BackupFilename(testNow); got != "kampala-backup-2026-10-17.json" {
		t.Errorf("BackupFilename() = %q", got)
	}

	if _, err := env.store.AddTransaction(env.ctx, models.NewTransaction{Type: "sale", PaymentMethod: "cash", Amount: dec("1")}); err != nil {
		t.Fatal(err)
	}

	// Structured value, text and bytes are all accepted.
	data, _ := json.Marshal(backup)
	for _, input := range []any{backup, string(data), data, bytes.NewReader(data)} {
		if err := env.store.RestoreBackup(env.ctx, input); err != nil {
			t.Fatalf("RestoreBackup(%T) error = %v", input, err)
		}
		restored, _ := env.store.Load(env.ctx)
		if withoutStamp(t, restored) != withoutStamp(t, original) {
			t.Fatalf("RestoreBackup(%T) did not bring back the backed up document", input)
		}
	}
}

func TestRestoreBackupRejectsInvalidInput(t *testing.T) {
	env := newInitializedEnv(t)
	before := env.slotBytes(t)

	var full map[string]json.RawMessage
	if err := json.Unmarshal(before, &full); err != nil {
		t.Fatal(err)
	}
	delete(full, "transactions")
	missing, _ := json.Marshal(full)

	tests := []struct {
		name  string
		input any
		want  error
	}{
		{"missing transactions", missing, ErrInvalidBackup},
		{"null settings", `{"users": {}, "transactions": [], "settings": null}`, ErrInvalidBackup},
		{"structured without users", map[string]any{"transactions": []any{}, "settings": map[string]any{}}, ErrInvalidBackup},
		{"nil", nil, ErrInvalidBackup},
		{"not json", "{{{", ErrMalformedInput},
		{"json array", "[1, 2]", ErrMalformedInput},
		{"wrong field type", `{"users": [], "transactions": [], "settings": {}}`, ErrMalformedInput},
		{"unmarshalable", map[string]any{"f": func() {}}, ErrMalformedInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := env.store.RestoreBackup(env.ctx, tt.input)
			if !errors.Is(err, tt.want) {
				t.Fatalf("RestoreBackup() error = %v, want %v", err, tt.want)
			}
			if !bytes.Equal(before, env.slotBytes(t)) {
				t.Fatal("failed restore changed the stored document")
			}
		})
	}
}

func TestRestoreLegacyBackupHashesPasswords(t *testing.T) {
	env := newTestEnv(t)
	legacy := `{
	  "users": {"john": {"password": "john123", "name": "John Kamau", "role": "owner", "permissions": ["dashboard"]}},
	  "transactions": [],
	  "debtors": [{"id": "DBT-001", "name": "A", "totalDebt": 100, "amountPaid": 100, "balance": 100, "status": "pending"}],
	  "settings": {"currency": "USD"},
	  "backupDate": "2024-01-20T10:00:00.000Z",
	  "version": "1.0"
	}`
	if err := env.store.RestoreBackup(env.ctx, legacy); err != nil {
		t.Fatalf("RestoreBackup() error = %v", err)
	}
	stored := string(env.slotBytes(t))
	if strings.Contains(stored, "john123") {
		t.Error("plaintext password survived the restore")
	}
	debtors, _ := env.store.ListDebtors(env.ctx)
	if debtors[0].Status != models.DebtorPaid || !debtors[0].Balance.IsZero() {
		t.Errorf("legacy debtor not re-derived: %+v", debtors[0])
	}
}
