package services

import (
	"context"
	"fmt"

	"kampala_finance_backend/internal/models"
)

// InventoryService reads and edits stock items.
type InventoryService interface {
	ListInventory(ctx context.Context) ([]models.InventoryItem, error)
	UpdateInventoryItem(ctx context.Context, id string, update models.InventoryUpdate) (*models.InventoryItem, error)
	LowStockItems(ctx context.Context) ([]models.InventoryItem, error)
}

func (s *dataStore) ListInventory(ctx context.Context) ([]models.InventoryItem, error) {
	doc, err := s.view(ctx)
	if err != nil || doc == nil {
		return []models.InventoryItem{}, err
	}
	return doc.Inventory, nil
}

// LowStockItems returns the items at or below their reorder level.
func (s *dataStore) LowStockItems(ctx context.Context) ([]models.InventoryItem, error) {
	items, err := s.ListInventory(ctx)
	if err != nil {
		return items, err
	}
	out := []models.InventoryItem{}
	for _, item := range items {
		if item.NeedsReorder() {
			out = append(out, item)
		}
	}
	return out, nil
}

func validateInventoryUpdate(u models.InventoryUpdate) error {
	for field, v := range map[string]*int{"currentStock": u.CurrentStock, "reorderLevel": u.ReorderLevel, "idealStock": u.IdealStock} {
		if v != nil && *v < 0 {
			return fmt.Errorf("%w: %s cannot be negative", ErrValidation, field)
		}
	}
	if u.CostPerUnit != nil {
		if err := nonNegative("costPerUnit", *u.CostPerUnit); err != nil {
			return err
		}
	}
	if u.LastRestocked != nil && *u.LastRestocked != "" && !validDate(*u.LastRestocked) {
		return fmt.Errorf("%w: lastRestocked must be YYYY-MM-DD", ErrValidation)
	}
	return nil
}

// UpdateInventoryItem merges the set fields of update into the item.
func (s *dataStore) UpdateInventoryItem(ctx context.Context, id string, update models.InventoryUpdate) (*models.InventoryItem, error) {
	if err := validateInventoryUpdate(update); err != nil {
		return nil, err
	}

	var updated models.InventoryItem
	err := s.mutate(ctx, func(doc *models.Document) error {
		var item *models.InventoryItem
		for i := range doc.Inventory {
			if doc.Inventory[i].ID == id {
				item = &doc.Inventory[i]
				break
			}
		}
		if item == nil {
			return fmt.Errorf("%w: inventory item %s", ErrNotFound, id)
		}

		if update.Name != nil {
			item.Name = *update.Name
		}
		if update.Category != nil {
			item.Category = *update.Category
		}
		if update.CurrentStock != nil {
			item.CurrentStock = *update.CurrentStock
		}
		if update.Unit != nil {
			item.Unit = *update.Unit
		}
		if update.ReorderLevel != nil {
			item.ReorderLevel = *update.ReorderLevel
		}
		if update.IdealStock != nil {
			item.IdealStock = *update.IdealStock
		}
		if update.Supplier != nil {
			item.Supplier = *update.Supplier
		}
		if update.LastRestocked != nil {
			item.LastRestocked = *update.LastRestocked
		}
		if update.CostPerUnit != nil {
			item.CostPerUnit = *update.CostPerUnit
		}
		updated = *item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
