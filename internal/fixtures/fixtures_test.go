package fixtures

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"kampala_finance_backend/internal/models"
)

func TestGenerateShape(t *testing.T) {
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

	for seed := uint64(1); seed <= 20; seed++ {
		doc := Generate(Options{Rand: rand.New(rand.NewPCG(seed, seed)), Now: now})

		if len(doc.Transactions) != TransactionCount {
			t.Fatalf("seed %d: %d transactions, want %d", seed, len(doc.Transactions), TransactionCount)
		}
		oldest := now.AddDate(0, 0, -29).Format(models.DateLayout)
		for _, tx := range doc.Transactions {
			if tx.Date < oldest || tx.Date > now.Format(models.DateLayout) {
				t.Errorf("seed %d: transaction %s dated %s outside the trailing 30 days", seed, tx.ID, tx.Date)
			}
			if tx.Amount.IsNegative() {
				t.Errorf("seed %d: transaction %s has negative amount", seed, tx.ID)
			}
		}

		seen := map[string]int{}
		for _, item := range doc.Inventory {
			seen[item.Category]++
			if !contains(itemNames[item.Category], item.Name) {
				t.Errorf("seed %d: item %q not in the %s name pool", seed, item.Name, item.Category)
			}
			if item.Unit != UnitFor(item.Category) {
				t.Errorf("seed %d: item %s unit %q, want %q", seed, item.ID, item.Unit, UnitFor(item.Category))
			}
		}
		if len(doc.Inventory) != len(InventoryCategories) {
			t.Errorf("seed %d: %d inventory items, want %d", seed, len(doc.Inventory), len(InventoryCategories))
		}
		for _, c := range InventoryCategories {
			if seen[c] != 1 {
				t.Errorf("seed %d: category %q has %d items, want 1", seed, c, seen[c])
			}
		}

		if len(doc.Financials) != 12 {
			t.Fatalf("seed %d: %d monthly summaries, want 12", seed, len(doc.Financials))
		}
		for i, m := range doc.Financials {
			if m.Month != months[i] || m.Year != FinancialYear {
				t.Errorf("seed %d: summary %d is %s %d", seed, i, m.Month, m.Year)
			}
			if !m.Profit.Equal(m.Revenue.Sub(m.Expenses)) {
				t.Errorf("seed %d: %s profit %s != %s - %s", seed, m.Month, m.Profit, m.Revenue, m.Expenses)
			}
		}

		for _, d := range doc.Debtors {
			if !d.Balance.Equal(d.TotalDebt.Sub(d.AmountPaid)) {
				t.Errorf("seed %d: debtor %s balance inconsistent", seed, d.ID)
			}
			if d.Status != models.DebtorStatus(d.Balance, d.TotalDebt) {
				t.Errorf("seed %d: debtor %s status %q inconsistent", seed, d.ID, d.Status)
			}
		}
	}
}

func TestGenerateIsSeedable(t *testing.T) {
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	a := Generate(Options{Rand: rand.New(rand.NewPCG(7, 7)), Now: now})
	b := Generate(Options{Rand: rand.New(rand.NewPCG(7, 7)), Now: now})
	for i := range a.Transactions {
		x, y := a.Transactions[i], b.Transactions[i]
		if x.ID != y.ID || x.Date != y.Date || x.Type != y.Type || !x.Amount.Equal(y.Amount) {
			t.Fatalf("same seed produced different transaction %d: %+v vs %+v", i, x, y)
		}
	}
}

func TestDefaultProfiles(t *testing.T) {
	profiles := DefaultProfiles()
	if len(profiles) != 4 {
		t.Fatalf("DefaultProfiles() has %d users, want 4", len(profiles))
	}
	for name, p := range profiles {
		if p.PasswordHash != "" {
			t.Errorf("profile %s ships with a password hash", name)
		}
		if strings.TrimSpace(p.Avatar) == "" || len(p.Permissions) == 0 {
			t.Errorf("profile %s is incomplete: %+v", name, p)
		}
	}
	if profiles["chef"].Role != models.RoleStaff {
		t.Errorf("chef role = %q", profiles["chef"].Role)
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
