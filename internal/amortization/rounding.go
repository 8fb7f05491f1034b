package amortization

import (
	"math"

	"github.com/shopspring/decimal"
)

// RoundingPolicy names the single rounding rule applied to every monetary value.
const RoundingPolicy = "half-up"

const (
	monthsPerYear      = 12
	monthlyRateDivisor = monthsPerYear * 100.0
)

// RoundCents rounds a fractional cent amount to the nearest cent, ties rounding up.
func RoundCents(value float64) int64 {
	return int64(math.Floor(value + 0.5))
}

// ToCents converts a major-unit amount to cents, rounding half up.
func ToCents(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

// MonthlyRate converts an APR percentage to a monthly fraction.
func MonthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / monthlyRateDivisor
}

// TermMonths converts a term in years to months.
func TermMonths(termYears int) int {
	return termYears * monthsPerYear
}
