// Package money centralizes bill arithmetic helpers. All monetary
// rounding is half-up to 2 decimal places, applied per line before any
// summation so stored totals match the printed ones exactly.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Round2 rounds half-up to 2 decimal places.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Format renders a decimal as a 2-decimal currency string, e.g. "1180.00".
func Format(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// ParseOptionalAmount parses a numeric field that is genuinely optional
// (e.g. service charge). Empty input yields zero; malformed or negative
// input is reported, never coerced.
func ParseOptionalAmount(raw string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, err
	}
	return d, nil
}
