package models

import "github.com/shopspring/decimal"

// InventoryItem represents a stocked ingredient or supply.
type InventoryItem struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	CurrentStock  int             `json:"currentStock"`
	Unit          string          `json:"unit"`
	ReorderLevel  int             `json:"reorderLevel"`
	IdealStock    int             `json:"idealStock"`
	Supplier      string          `json:"supplier"`
	LastRestocked string          `json:"lastRestocked"` // YYYY-MM-DD
	CostPerUnit   decimal.Decimal `json:"costPerUnit"`
}

// NeedsReorder reports whether stock fell to or below the reorder level.
func (i InventoryItem) NeedsReorder() bool {
	return i.CurrentStock <= i.ReorderLevel
}

// InventoryUpdate is a partial update of an inventory item. Nil fields are left untouched.
type InventoryUpdate struct {
	Name          *string          `json:"name"`
	Category      *string          `json:"category"`
	CurrentStock  *int             `json:"currentStock"`
	Unit          *string          `json:"unit"`
	ReorderLevel  *int             `json:"reorderLevel"`
	IdealStock    *int             `json:"idealStock"`
	Supplier      *string          `json:"supplier"`
	LastRestocked *string          `json:"lastRestocked"`
	CostPerUnit   *decimal.Decimal `json:"costPerUnit"`
}
