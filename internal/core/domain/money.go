package domain

import "github.com/shopspring/decimal"

// RoundSignificant rounds d to the given number of significant digits,
// half-up. Used for USD conversion results (e.g. 10000 KZT * 0.0021 -> 21.00).
func RoundSignificant(d decimal.Decimal, digits int32) decimal.Decimal {
	if d.IsZero() {
		return d
	}

	// Order of magnitude of |d|: 21.0 -> 1, 0.0021 -> -3.
	ten := decimal.NewFromInt(10)
	one := decimal.NewFromInt(1)
	abs := d.Abs()
	var magnitude int32
	for abs.GreaterThanOrEqual(ten) {
		abs = abs.Div(ten)
		magnitude++
	}
	for abs.LessThan(one) {
		abs = abs.Mul(ten)
		magnitude--
	}

	return d.Round(digits - 1 - magnitude)
}
