package utils

import (
	"sync"
	"testing"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

func TestFormatMoneyUnknownCurrency(t *testing.T) {
	if got := FormatMoney(mustDecimal(t, "10.5"), "xqz"); got != "XQZ 10.50" {
		t.Errorf("FormatMoney() = %q, want %q", got, "XQZ 10.50")
	}
	if money.GetCurrency("XQZ") != nil || money.GetCurrency("xqz") != nil {
		t.Error("FormatMoney() registered an unknown currency")
	}
	if KnownCurrency("XQZ") {
		t.Error("KnownCurrency(XQZ) = true")
	}
	if !KnownCurrency("UGX") {
		t.Error("KnownCurrency(UGX) = false")
	}
}

func TestFormatMoneyConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			code := "XQZ"
			if i%2 == 0 {
				code = "USD"
			}
			if got := FormatMoney(decimal.NewFromInt(10), code); got == "" {
				t.Errorf("FormatMoney(10, %s) is empty", code)
			}
		}(i)
	}
	wg.Wait()
}
