package models

import "github.com/shopspring/decimal"

// Debtor statuses.
const (
	DebtorPending = "pending"
	DebtorPartial = "partial"
	DebtorPaid    = "paid"
)

// Debtor is a customer owing the restaurant money.
// Balance and Status are maintained by the store, see Derive.
type Debtor struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Contact    string          `json:"contact"`
	Email      string          `json:"email"`
	TotalDebt  decimal.Decimal `json:"totalDebt"`
	AmountPaid decimal.Decimal `json:"amountPaid"`
	Balance    decimal.Decimal `json:"balance"`
	DueDate    string          `json:"dueDate"`
	Status     string          `json:"status"`
	Notes      string          `json:"notes"`
}

// DebtorStatus maps a balance to a status:
// balance <= 0 is paid, 0 < balance < totalDebt is partial, anything else pending.
func DebtorStatus(balance, totalDebt decimal.Decimal) string {
	switch {
	case !balance.IsPositive():
		return DebtorPaid
	case balance.LessThan(totalDebt):
		return DebtorPartial
	default:
		return DebtorPending
	}
}

// Derive recomputes Balance and Status from TotalDebt and AmountPaid.
func (d *Debtor) Derive() {
	d.Balance = d.TotalDebt.Sub(d.AmountPaid)
	d.Status = DebtorStatus(d.Balance, d.TotalDebt)
}

// NewDebtor carries the caller supplied part of a debtor.
type NewDebtor struct {
	Name       string          `json:"name" binding:"required"`
	Contact    string          `json:"contact"`
	Email      string          `json:"email"`
	TotalDebt  decimal.Decimal `json:"totalDebt"`
	AmountPaid decimal.Decimal `json:"amountPaid"`
	DueDate    string          `json:"dueDate"`
	Notes      string          `json:"notes"`
}

// DebtorUpdate is a partial update. Nil fields are left untouched.
// Balance and status are derived and cannot be set directly.
type DebtorUpdate struct {
	Name       *string          `json:"name"`
	Contact    *string          `json:"contact"`
	Email      *string          `json:"email"`
	TotalDebt  *decimal.Decimal `json:"totalDebt"`
	AmountPaid *decimal.Decimal `json:"amountPaid"`
	DueDate    *string          `json:"dueDate"`
	Notes      *string          `json:"notes"`
}

// DebtorPayment records money received from a debtor.
type DebtorPayment struct {
	Amount decimal.Decimal `json:"amount"`
}
