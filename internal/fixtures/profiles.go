package fixtures

import (
	"kampala_finance_backend/internal/models"

	"github.com/shopspring/decimal"
)

// DefaultProfiles returns the restaurant's user directory without passwords.
// Callers attach password hashes before the profiles reach a document.
func DefaultProfiles() map[string]models.UserRecord {
	return map[string]models.UserRecord{
		"john": {
			Name:        "John Kamau",
			Role:        models.RoleOwner,
			Email:       "john@kampalakuisine.com",
			Ownership:   decimal.NewFromInt(60),
			Investment:  decimal.NewFromInt(25000),
			Avatar:      "JK",
			Permissions: []string{models.PermDashboard, models.PermFinancials, models.PermDecisions, models.PermStaff, models.PermInventory, models.PermSettings},
		},
		"mary": {
			Name:        "Mary Wanjiku",
			Role:        models.RoleOwner,
			Email:       "mary@kampalakuisine.com",
			Ownership:   decimal.NewFromInt(40),
			Investment:  decimal.NewFromInt(15000),
			Avatar:      "MW",
			Permissions: []string{models.PermDashboard, models.PermFinancials, models.PermDecisions, models.PermSuppliers, models.PermMarketing, models.PermSettings},
		},
		"manager": {
			Name:        "James Omondi",
			Role:        models.RoleManager,
			Email:       "james@kampalakuisine.com",
			Avatar:      "JO",
			Permissions: []string{models.PermDashboard, models.PermDailyOps, models.PermStaff, models.PermInventory, models.PermReports},
		},
		"chef": {
			Name:        "Chef Wambui",
			Role:        models.RoleStaff,
			Email:       "chef@kampalakuisine.com",
			Avatar:      "CW",
			Permissions: []string{models.PermInventory, models.PermOrders, models.PermReports},
		},
	}
}
