package services

import (
	"bytes"
	"errors"
	"testing"

	"kampala_finance_backend/internal/models"
)

func TestInitializeIsIdempotent(t *testing.T) {
	env := newInitializedEnv(t)
	before := env.slotBytes(t)

	if err := env.store.Initialize(env.ctx); err != nil {
		t.Fatalf("second Initialize() error = %v", err)
	}
	if !bytes.Equal(before, env.slotBytes(t)) {
		t.Fatal("second Initialize() rewrote the document")
	}

	doc, err := env.store.Load(env.ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if doc.SchemaVersion != models.CurrentSchemaVersion {
		t.Errorf("schemaVersion = %d", doc.SchemaVersion)
	}
	if len(doc.Users) != 4 || doc.Users["john"].PasswordHash == "" {
		t.Errorf("users not seeded with hashes: %+v", doc.Users)
	}
}

func TestInitializeDoesNotMaskCorruption(t *testing.T) {
	env := newTestEnv(t)
	corrupt := []byte(`{"transactions": [`)
	if err := env.slot.Write(env.ctx, corrupt); err != nil {
		t.Fatal(err)
	}

	err := env.store.Initialize(env.ctx)
	if !errors.Is(err, ErrMalformedDocument) {
		t.Fatalf("Initialize() error = %v, want ErrMalformedDocument", err)
	}
	if !bytes.Equal(corrupt, env.slotBytes(t)) {
		t.Fatal("corrupt document was overwritten")
	}
	if _, err := env.store.ListDebtors(env.ctx); !errors.Is(err, ErrMalformedDocument) {
		t.Errorf("ListDebtors() error = %v, want ErrMalformedDocument", err)
	}
}

func TestAbsentDocument(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.store.Load(env.ctx); !errors.Is(err, ErrDocumentAbsent) {
		t.Errorf("Load() error = %v, want ErrDocumentAbsent", err)
	}
	txs, err := env.store.ListTransactions(env.ctx, models.TransactionFilter{})
	if err != nil || len(txs) != 0 {
		t.Errorf("ListTransactions() = %v, %v; want empty, nil", txs, err)
	}
	items, err := env.store.ListInventory(env.ctx)
	if err != nil || len(items) != 0 {
		t.Errorf("ListInventory() = %v, %v; want empty, nil", items, err)
	}

	_, err = env.store.AddTransaction(env.ctx, models.NewTransaction{Type: "sale", PaymentMethod: "cash", Amount: dec("10")})
	if !errors.Is(err, ErrDocumentAbsent) {
		t.Errorf("AddTransaction() error = %v, want ErrDocumentAbsent", err)
	}
	_, err = env.store.UpdateDebtor(env.ctx, "DBT-001", models.DebtorUpdate{Name: ptr("x")})
	if !errors.Is(err, ErrDocumentAbsent) {
		t.Errorf("UpdateDebtor() error = %v, want ErrDocumentAbsent", err)
	}
	if _, err := env.store.GetUser(env.ctx, "john"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetUser() error = %v, want ErrNotFound", err)
	}
	if _, err := env.store.ExportData(env.ctx); !errors.Is(err, ErrDocumentAbsent) {
		t.Errorf("ExportData() error = %v, want ErrDocumentAbsent", err)
	}
	if _, err := env.slot.Read(env.ctx); err == nil {
		t.Error("a failed write created a document")
	}
}

func TestClear(t *testing.T) {
	env := newInitializedEnv(t)
	if err := env.store.Clear(env.ctx); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if _, err := env.store.Load(env.ctx); !errors.Is(err, ErrDocumentAbsent) {
		t.Errorf("Load() after Clear error = %v, want ErrDocumentAbsent", err)
	}
}

func TestNextSequence(t *testing.T) {
	ids := []string{"TRX-1000", "TRX-1049", "TRX-abc", "DBT-5000"}
	if got := nextSequence(ids, "TRX-", 1); got != 1050 {
		t.Errorf("nextSequence() = %d, want 1050", got)
	}
	if got := nextSequence(ids, "TRX-", 99999); got != 99999 {
		t.Errorf("nextSequence() = %d, want floor 99999", got)
	}
}
