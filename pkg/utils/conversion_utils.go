package utils

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatMoney renders an amount in major units with the currency's symbol,
// separators and number of fraction digits, e.g. "$2,450.75".
// Codes go-money does not know are rendered as "<code> 12.50". The currency
// registry is a global map, so it is only read here.
func FormatMoney(amount decimal.Decimal, currency string) string {
	if currency == "" {
		currency = "USD"
	}
	cur := money.GetCurrency(currency)
	if cur == nil {
		return strings.ToUpper(currency) + " " + amount.StringFixed(2)
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, cur.Code).Display()
}

// KnownCurrency reports whether code is an ISO currency go-money can format.
func KnownCurrency(code string) bool {
	return money.GetCurrency(code) != nil
}
