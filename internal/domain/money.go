package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Money is a decimal amount in a specific currency.
type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

// Display symbols for the currencies the shop sells in.
// Codes outside this table fall back to the ISO code itself.
var currencySymbols = map[string]string{
	"NPR": "रू",
	"USD": "$",
	"INR": "₹",
	"EUR": "€",
	"CAD": "CA$",
	"AUD": "A$",
}

// DefaultCurrency is used when a catalog row carries no currency code.
var DefaultCurrency = currency.MustParseISO("NPR")

// ParseMoney builds a Money from a decimal-formatted price string and an ISO
// currency code. An empty code falls back to DefaultCurrency.
func ParseMoney(amount, code string) (Money, error) {
	dec, err := decimal.NewFromString(strings.ReplaceAll(amount, ",", ""))
	if err != nil {
		return Money{}, Invalid("money.parse", fmt.Sprintf("not a decimal amount: %q", amount))
	}

	unit := DefaultCurrency
	if code != "" {
		unit, err = currency.ParseISO(code)
		if err != nil {
			return Money{}, Invalid("money.parse", fmt.Sprintf("unknown currency: %q", code))
		}
	}

	return Money{Amount: dec, Currency: unit}, nil
}

// Add returns m + other. Currencies must match; mismatches return an error
// rather than silently mixing units.
func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, Invalid("money.add", fmt.Sprintf("currency mismatch: %s vs %s", m.Currency, other.Currency))
	}
	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}, nil
}

// Mul returns m scaled by an integer quantity.
func (m Money) Mul(qty int) Money {
	return Money{Amount: m.Amount.Mul(decimal.NewFromInt(int64(qty))), Currency: m.Currency}
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

// Plain renders the bare decimal amount, e.g. "1250.00". This is the form
// carried on variant options and cart lines.
func (m Money) Plain() string {
	return m.Amount.StringFixed(2)
}

// String renders the amount with its display symbol, e.g. "रू1250.00".
func (m Money) String() string {
	symbol, ok := currencySymbols[m.Currency.String()]
	if !ok {
		symbol = m.Currency.String()
	}
	return symbol + m.Amount.StringFixed(2)
}
