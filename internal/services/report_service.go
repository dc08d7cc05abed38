package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"kampala_finance_backend/internal/models"
	"kampala_finance_backend/pkg/utils"

	"github.com/shopspring/decimal"
)

// ReportService derives read-only summaries from the document.
type ReportService interface {
	DailyReport(ctx context.Context, day, notes string) (*models.DailyReport, error)
	DashboardSummary(ctx context.Context) (*models.DashboardSummary, error)
}

// topItemCount is the number of categories listed in a daily report.
const topItemCount = 3

// ReportFilename names the daily report of day, e.g. kampala-report-10-17-2026.json.
func ReportFilename(day time.Time) string {
	return fmt.Sprintf("kampala-report-%d-%d-%d.json", int(day.Month()), day.Day(), day.Year())
}

// DailyReport summarizes the transactions of day (YYYY-MM-DD, empty for today).
// Revenue is sales minus refunds and the average order is revenue per sale.
func (s *dataStore) DailyReport(ctx context.Context, day, notes string) (*models.DailyReport, error) {
	if day == "" {
		day = s.now().Format(models.DateLayout)
	}
	if !validDate(day) {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}
	doc, err := s.view(ctx)
	if err != nil {
		return nil, err
	}

	currency := ""
	revenue := decimal.Zero
	count, sales := 0, 0
	byCategory := map[string]decimal.Decimal{}
	if doc != nil {
		currency = doc.Settings.Currency
		for _, t := range doc.Transactions {
			if t.Date != day {
				continue
			}
			count++
			switch t.Type {
			case models.TransactionSale:
				sales++
				revenue = revenue.Add(t.Amount)
				byCategory[t.Category] = byCategory[t.Category].Add(t.Amount)
			case models.TransactionRefund:
				revenue = revenue.Sub(t.Amount)
			}
		}
	}

	average := decimal.Zero
	if sales > 0 {
		average = revenue.Div(decimal.NewFromInt(int64(sales)))
	}

	return &models.DailyReport{
		Date:         day,
		GeneratedBy:  actorName(ctx),
		Revenue:      utils.FormatMoney(revenue, currency),
		Transactions: count,
		AverageOrder: utils.FormatMoney(average, currency),
		TopItems:     topCategories(byCategory, topItemCount),
		Notes:        notes,
	}, nil
}

// topCategories returns up to n categories by amount, ties broken by name.
func topCategories(amounts map[string]decimal.Decimal, n int) []string {
	names := make([]string, 0, len(amounts))
	for name := range amounts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := amounts[names[i]], amounts[names[j]]
		if !a.Equal(b) {
			return a.GreaterThan(b)
		}
		return names[i] < names[j]
	})
	if len(names) > n {
		names = names[:n]
	}
	return names
}

func (s *dataStore) DashboardSummary(ctx context.Context) (*models.DashboardSummary, error) {
	doc, err := s.view(ctx)
	if err != nil {
		return nil, err
	}
	summary := &models.DashboardSummary{
		SalesToday:        decimal.Zero,
		SalesThisMonth:    decimal.Zero,
		ExpensesThisMonth: decimal.Zero,
		OutstandingDebt:   decimal.Zero,
	}
	if doc == nil {
		return summary, nil
	}
	summary.Currency = doc.Settings.Currency

	now := s.now()
	today := now.Format(models.DateLayout)
	month := now.Format("2006-01")
	for _, t := range doc.Transactions {
		if t.Date == today {
			summary.TransactionsToday++
			if t.Type == models.TransactionSale {
				summary.SalesToday = summary.SalesToday.Add(t.Amount)
			}
		}
		if len(t.Date) < len(month) || t.Date[:len(month)] != month {
			continue
		}
		switch t.Type {
		case models.TransactionSale:
			summary.SalesThisMonth = summary.SalesThisMonth.Add(t.Amount)
		case models.TransactionExpense:
			summary.ExpensesThisMonth = summary.ExpensesThisMonth.Add(t.Amount)
		}
	}
	for _, d := range doc.Debtors {
		if d.Status != models.DebtorPaid {
			summary.PendingDebtorCount++
		}
		if d.Balance.IsPositive() {
			summary.OutstandingDebt = summary.OutstandingDebt.Add(d.Balance)
		}
	}
	for _, item := range doc.Inventory {
		if item.NeedsReorder() {
			summary.LowStockItemsCount++
		}
	}
	return summary, nil
}
