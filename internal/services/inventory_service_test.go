package services

import (
	"bytes"
	"errors"
	"testing"

	"kampala_finance_backend/internal/models"
)

func TestUpdateInventoryItem(t *testing.T) {
	env := newInitializedEnv(t)

	got, err := env.store.UpdateInventoryItem(env.ctx, "INV-100", models.InventoryUpdate{
		CurrentStock:  ptr(5),
		LastRestocked: ptr("2026-10-16"),
	})
	if err != nil {
		t.Fatalf("UpdateInventoryItem() error = %v", err)
	}
	if got.CurrentStock != 5 || got.LastRestocked != "2026-10-16" || got.Category != "meat" {
		t.Errorf("UpdateInventoryItem() = %+v", got)
	}

	low, err := env.store.LowStockItems(env.ctx)
	if err != nil {
		t.Fatalf("LowStockItems() error = %v", err)
	}
	found := false
	for _, item := range low {
		if !item.NeedsReorder() {
			t.Errorf("LowStockItems() returned %s with stock %d above %d", item.ID, item.CurrentStock, item.ReorderLevel)
		}
		found = found || item.ID == "INV-100"
	}
	if !found {
		t.Error("LowStockItems() is missing INV-100")
	}
}

func TestUpdateInventoryItemUnknownID(t *testing.T) {
	env := newInitializedEnv(t)
	before := env.slotBytes(t)

	_, err := env.store.UpdateInventoryItem(env.ctx, "INV-999", models.InventoryUpdate{CurrentStock: ptr(1)})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("UpdateInventoryItem() error = %v, want ErrNotFound", err)
	}
	if !bytes.Equal(before, env.slotBytes(t)) {
		t.Error("failed update changed the stored document")
	}
	items, _ := env.store.ListInventory(env.ctx)
	if len(items) != 6 {
		t.Errorf("inventory length = %d, want 6", len(items))
	}
}

func TestUpdateInventoryItemValidation(t *testing.T) {
	env := newInitializedEnv(t)
	bad := []models.InventoryUpdate{
		{CurrentStock: ptr(-1)},
		{CostPerUnit: ptr(dec("-0.01"))},
		{LastRestocked: ptr("17/10/2026")},
	}
	for _, u := range bad {
		if _, err := env.store.UpdateInventoryItem(env.ctx, "INV-100", u); !errors.Is(err, ErrValidation) {
			t.Errorf("UpdateInventoryItem(%+v) error = %v, want ErrValidation", u, err)
		}
	}
}
