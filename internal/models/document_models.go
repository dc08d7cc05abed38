package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrentSchemaVersion is the document layout written by this build.
// Documents without a schemaVersion are treated as version 0 (the layout the
// browser dashboard used to write) and migrated on load.
const CurrentSchemaVersion = 1

// DefaultStorageKey names the slot that holds the document.
const DefaultStorageKey = "kampala_finance_data"

// Document is the single root object holding all application state.
type Document struct {
	SchemaVersion int                   `json:"schemaVersion"`
	Users         map[string]UserRecord `json:"users"`
	Transactions  []Transaction         `json:"transactions"`
	Debtors       []Debtor              `json:"debtors"`
	Inventory     []InventoryItem       `json:"inventory"`
	Financials    []MonthlySummary      `json:"financials"`
	Settings      *Settings             `json:"settings"`
	LastUpdated   time.Time             `json:"lastUpdated"`
}

// Role of a user in the restaurant.
const (
	RoleOwner   = "owner"
	RoleManager = "manager"
	RoleStaff   = "staff"
)

// UserRecord is one entry of the user directory.
type UserRecord struct {
	PasswordHash string          `json:"passwordHash,omitempty"`
	Name         string          `json:"name"`
	Role         string          `json:"role"`
	Email        string          `json:"email"`
	Ownership    decimal.Decimal `json:"ownership"`
	Investment   decimal.Decimal `json:"investment"`
	Avatar       string          `json:"avatar"`
	Permissions  []string        `json:"permissions"`
}

// HasPermission reports whether the record carries the permission tag.
func (u UserRecord) HasPermission(tag string) bool {
	for _, p := range u.Permissions {
		if p == tag {
			return true
		}
	}
	return false
}

// Settings are the restaurant wide preferences.
type Settings struct {
	RestaurantName string          `json:"restaurantName"`
	ThemeColor     string          `json:"themeColor"`
	Currency       string          `json:"currency"`
	TaxRate        decimal.Decimal `json:"taxRate"`
	ServiceCharge  decimal.Decimal `json:"serviceCharge"`
}

// MonthlySummary holds the headline figures of one month.
// Profit is computed once when the summary is created.
type MonthlySummary struct {
	Month            string          `json:"month"`
	Year             int             `json:"year"`
	Revenue          decimal.Decimal `json:"revenue"`
	Expenses         decimal.Decimal `json:"expenses"`
	Profit           decimal.Decimal `json:"profit"`
	FoodCostPercent  decimal.Decimal `json:"foodCostPercent"`
	LaborCostPercent decimal.Decimal `json:"laborCostPercent"`
	GlovoOrders      int             `json:"glovoOrders"`
	GlovoRevenue     decimal.Decimal `json:"glovoRevenue"`
}

// NewMonthlySummary builds a summary with profit derived from revenue and expenses.
func NewMonthlySummary(month string, year int, revenue, expenses decimal.Decimal) MonthlySummary {
	return MonthlySummary{
		Month:    month,
		Year:     year,
		Revenue:  revenue,
		Expenses: expenses,
		Profit:   revenue.Sub(expenses),
	}
}

// Backup is a document copy stamped with when and in which format it was taken.
type Backup struct {
	Document
	BackedUpAt time.Time `json:"backedUpAt"`
	Version    string    `json:"version"`
}

// BackupFormatVersion tags backups written by CreateBackup.
const BackupFormatVersion = "1.0"
