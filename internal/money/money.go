// Package money provides fixed-precision helpers for balance arithmetic.
// Every balance mutation and every displayed amount goes through Round2 so
// repeated addition/subtraction never accumulates fractional drift.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MaxBillAmount is the upper bound accepted for a single bill.
var MaxBillAmount = decimal.NewFromInt(999999)

// Round2 rounds an amount to 2 fraction digits using half-up rounding.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// IsZero reports whether an amount is exactly zero after rounding.
// Zero checks must use this rather than tolerance comparison.
func IsZero(d decimal.Decimal) bool {
	return Round2(d).IsZero()
}

// Min returns the smaller of two amounts.
func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Format renders the absolute value of an amount with a currency symbol,
// e.g. "Rs.42.50".
func Format(symbol string, d decimal.Decimal) string {
	return fmt.Sprintf("%s%s", symbol, d.Abs().StringFixed(2))
}
