// Package fixtures synthesizes the starting document of a fresh installation:
// a month of random transactions, a few debtors, one inventory item per
// category and a year of monthly summaries.
package fixtures

import (
	"fmt"
	"math/rand/v2"
	"time"

	"kampala_finance_backend/internal/models"

	"github.com/shopspring/decimal"
)

// TransactionCount is the number of transactions generated.
const TransactionCount = 50

// FinancialYear is the year covered by the generated monthly summaries.
const FinancialYear = 2024

// Categories of generated transactions.
var TransactionCategories = []string{"food", "beverage", "supplies", "utilities", "salary", "rent"}

// InventoryCategories holds exactly one generated item each.
var InventoryCategories = []string{"meat", "vegetables", "dairy", "beverages", "dry goods", "spices"}

var itemNames = map[string][]string{
	"meat":       {"Beef Tenderloin", "Chicken Breast", "Pork Chops", "Lamb Rack"},
	"vegetables": {"Tomatoes", "Onions", "Bell Peppers", "Lettuce", "Carrots"},
	"dairy":      {"Milk", "Cheese", "Butter", "Yogurt"},
	"beverages":  {"Soda", "Juice", "Coffee Beans", "Tea Leaves"},
	"dry goods":  {"Rice", "Flour", "Sugar", "Pasta"},
	"spices":     {"Salt", "Pepper", "Paprika", "Cumin"},
}

var units = map[string]string{
	"meat":       "kg",
	"vegetables": "kg",
	"dairy":      "liters",
	"beverages":  "bottles",
	"dry goods":  "kg",
	"spices":     "grams",
}

var suppliers = []string{"Nakumatt", "Tuskys", "GreenGrocers Ltd", "FreshDirect", "Local Market"}

var months = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// Options control fixture generation. Zero values pick a random source and the current time.
type Options struct {
	Rand *rand.Rand
	Now  time.Time
	// Users is the user directory to embed, usually DefaultProfiles with hashed passwords.
	Users map[string]models.UserRecord
}

// Generate builds a self-consistent starting document.
// It is not idempotent; callers guard it with their own existence check.
func Generate(opts Options) *models.Document {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	users := opts.Users
	if users == nil {
		users = map[string]models.UserRecord{}
	}

	return &models.Document{
		SchemaVersion: models.CurrentSchemaVersion,
		Users:         users,
		Transactions:  transactions(rng, now),
		Debtors:       debtors(),
		Inventory:     inventory(rng, now),
		Financials:    financials(rng),
		Settings:      DefaultSettings(),
		LastUpdated:   now.UTC(),
	}
}

// DefaultSettings returns the settings of a fresh installation.
func DefaultSettings() *models.Settings {
	return &models.Settings{
		RestaurantName: "Kampala Kuisine",
		ThemeColor:     "green",
		Currency:       "USD",
		TaxRate:        decimal.NewFromInt(16),
		ServiceCharge:  decimal.NewFromInt(10),
	}
}

// pick returns a random element of list.
func pick[T any](rng *rand.Rand, list []T) T {
	return list[rng.IntN(len(list))]
}

// money returns a random amount in [min, min+span) rounded to cents.
func money(rng *rand.Rand, min, span float64) decimal.Decimal {
	return decimal.NewFromFloat(rng.Float64()*span + min).Round(2)
}

func transactions(rng *rand.Rand, now time.Time) []models.Transaction {
	out := make([]models.Transaction, 0, TransactionCount)
	owners := []string{"john", "mary"}
	meridiem := []string{"AM", "PM"}

	for i := 0; i < TransactionCount; i++ {
		day := now.AddDate(0, 0, -rng.IntN(30))
		out = append(out, models.Transaction{
			ID:            fmt.Sprintf("TRX-%d", 1000+i),
			Date:          day.Format(models.DateLayout),
			Time:          fmt.Sprintf("%d:%02d:00 %s", rng.IntN(12)+1, rng.IntN(60), pick(rng, meridiem)),
			Type:          pick(rng, models.TransactionTypes),
			Category:      pick(rng, TransactionCategories),
			Description:   fmt.Sprintf("Transaction %d", i+1),
			Amount:        money(rng, 10, 200),
			PaymentMethod: pick(rng, models.PaymentMethods),
			Reference:     fmt.Sprintf("REF-%d", rng.IntN(10000)),
			RecordedBy:    pick(rng, owners),
		})
	}
	return out
}

func debtors() []models.Debtor {
	list := []models.Debtor{
		{
			ID:         "DBT-001",
			Name:       "Corporate Catering Ltd",
			Contact:    "0712 345 678",
			Email:      "accounts@corporatecatering.co.ke",
			TotalDebt:  decimal.NewFromInt(1500),
			AmountPaid: decimal.NewFromInt(500),
			DueDate:    "2024-01-25",
			Notes:      "Regular corporate client",
		},
		{
			ID:         "DBT-002",
			Name:       "Events Company",
			Contact:    "0733 987 654",
			Email:      "finance@eventscompany.co.ke",
			TotalDebt:  decimal.NewFromInt(850),
			AmountPaid: decimal.Zero,
			DueDate:    "2024-01-28",
			Notes:      "Wedding event catering",
		},
		{
			ID:         "DBT-003",
			Name:       "Tech Startup Office",
			Contact:    "0701 234 567",
			Email:      "office@techstartup.co.ke",
			TotalDebt:  decimal.NewFromInt(2300),
			AmountPaid: decimal.NewFromInt(2300),
			DueDate:    "2024-01-15",
			Notes:      "Monthly office lunch subscription",
		},
	}
	for i := range list {
		list[i].Derive()
	}
	return list
}

func inventory(rng *rand.Rand, now time.Time) []models.InventoryItem {
	out := make([]models.InventoryItem, 0, len(InventoryCategories))
	for i, category := range InventoryCategories {
		restocked := now.Add(-time.Duration(rng.Int64N(int64(7 * 24 * time.Hour))))
		out = append(out, models.InventoryItem{
			ID:            fmt.Sprintf("INV-%d", 100+i),
			Name:          pick(rng, itemNames[category]),
			Category:      category,
			CurrentStock:  rng.IntN(100) + 10,
			Unit:          UnitFor(category),
			ReorderLevel:  20,
			IdealStock:    50,
			Supplier:      pick(rng, suppliers),
			LastRestocked: restocked.Format(models.DateLayout),
			CostPerUnit:   money(rng, 1, 10),
		})
	}
	return out
}

// UnitFor returns the stock unit of an inventory category.
func UnitFor(category string) string {
	if u, ok := units[category]; ok {
		return u
	}
	return "units"
}

func financials(rng *rand.Rand) []models.MonthlySummary {
	out := make([]models.MonthlySummary, 0, len(months))
	for _, month := range months {
		revenue := decimal.NewFromInt(int64(rng.IntN(50000) + 30000))
		expenses := decimal.NewFromInt(int64(rng.IntN(30000) + 20000))
		m := models.NewMonthlySummary(month, FinancialYear, revenue, expenses)
		m.FoodCostPercent = decimal.NewFromFloat(rng.Float64()*10 + 25).Round(1)
		m.LaborCostPercent = decimal.NewFromFloat(rng.Float64()*10 + 20).Round(1)
		m.GlovoOrders = rng.IntN(100) + 50
		m.GlovoRevenue = decimal.NewFromInt(int64(rng.IntN(15000) + 5000))
		out = append(out, m)
	}
	return out
}
