package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// CUP is the Cuban peso, the storefront's local settlement currency.
var CUP = currency.MustParseISO("CUP")

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func NewMoney(amount decimal.Decimal, unit currency.Unit) Money {
	return Money{Amount: amount, Currency: unit}
}

// String renders the amount with two decimals followed by the ISO code, e.g. "950.00 CUP".
func (m Money) String() string {
	return FormatAmount(m.Amount, m.Currency)
}

func FormatAmount(amount decimal.Decimal, unit currency.Unit) string {
	return amount.StringFixed(2) + " " + unit.String()
}
