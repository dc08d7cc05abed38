package models

import "github.com/shopspring/decimal"

// DailyReport is the flat summary downloaded from the dashboard.
type DailyReport struct {
	Date         string   `json:"date"`
	GeneratedBy  string   `json:"generatedBy"`
	Revenue      string   `json:"revenue"`
	Transactions int      `json:"transactions"`
	AverageOrder string   `json:"averageOrder"`
	TopItems     []string `json:"topItems"`
	Notes        string   `json:"notes"`
}

// DashboardSummary holds key metrics for the dashboard.
type DashboardSummary struct {
	Currency           string          `json:"currency"`
	SalesToday         decimal.Decimal `json:"sales_today"`
	TransactionsToday  int             `json:"transactions_today"`
	SalesThisMonth     decimal.Decimal `json:"sales_this_month"`
	ExpensesThisMonth  decimal.Decimal `json:"expenses_this_month"`
	OutstandingDebt    decimal.Decimal `json:"outstanding_debt"`
	PendingDebtorCount int             `json:"pending_debtors_count"`
	LowStockItemsCount int             `json:"low_stock_items_count"`
}

// ReportRequestParams holds the parameters of a daily report request.
type ReportRequestParams struct {
	Date  string `form:"date"` // YYYY-MM-DD, defaults to today
	Notes string `form:"notes"`
}
