package models

import "github.com/shopspring/decimal"

// Transaction types.
const (
	TransactionSale    = "sale"
	TransactionExpense = "expense"
	TransactionPayment = "payment"
	TransactionRefund  = "refund"
)

// Payment methods.
const (
	PaymentCash   = "cash"
	PaymentCard   = "card"
	PaymentMobile = "mobile"
	PaymentGlovo  = "glovo"
)

// TransactionTypes lists the accepted transaction types.
var TransactionTypes = []string{TransactionSale, TransactionExpense, TransactionPayment, TransactionRefund}

// PaymentMethods lists the accepted payment methods.
var PaymentMethods = []string{PaymentCash, PaymentCard, PaymentMobile, PaymentGlovo}

// DateLayout is the calendar date format used throughout the document.
const DateLayout = "2006-01-02"

// TimeLayout is the wall clock format of Transaction.Time.
const TimeLayout = "3:04:05 PM"

// Transaction is a single money movement recorded by the restaurant.
type Transaction struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"` // YYYY-MM-DD
	Time          string          `json:"time"`
	Type          string          `json:"type"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod"`
	Reference     string          `json:"reference"`
	RecordedBy    string          `json:"recordedBy"`
}

// TransactionFilter restricts a transaction listing. Empty fields match everything.
type TransactionFilter struct {
	Date     string `form:"date" json:"date,omitempty"`
	Type     string `form:"type" json:"type,omitempty"`
	Category string `form:"category" json:"category,omitempty"`
}

// Match reports whether t satisfies every set field of the filter.
func (f TransactionFilter) Match(t Transaction) bool {
	if f.Date != "" && t.Date != f.Date {
		return false
	}
	if f.Type != "" && t.Type != f.Type {
		return false
	}
	if f.Category != "" && t.Category != f.Category {
		return false
	}
	return true
}

// NewTransaction carries the caller supplied part of a transaction.
// The store assigns ID, Date and Time.
type NewTransaction struct {
	Type          string          `json:"type" binding:"required"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod" binding:"required"`
	Reference     string          `json:"reference"`
	RecordedBy    string          `json:"recordedBy"`
}
