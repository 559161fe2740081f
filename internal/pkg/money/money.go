// Package money holds the currency helpers shared by the payroll and project
// reconciliation code. Amounts are decimal.Decimal and are rounded to cents at
// every aggregation boundary.
package money

import "github.com/shopspring/decimal"

// CentPlaces is the number of fractional digits kept for currency.
const CentPlaces = 2

// RoundToCents rounds half away from zero to two decimal places.
func RoundToCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(CentPlaces)
}

// FromFloat converts a float amount and rounds it to cents.
func FromFloat(f float64) decimal.Decimal {
	return RoundToCents(decimal.NewFromFloat(f))
}

// Sum adds the amounts and rounds the result to cents.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	return RoundToCents(decimal.Sum(decimal.Zero, amounts...))
}

// Format renders an amount with exactly two decimals, e.g. "1250.50".
func Format(d decimal.Decimal) string {
	return RoundToCents(d).StringFixed(CentPlaces)
}
