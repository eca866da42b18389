// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/shopspring/decimal"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// RoundCurrency rounds half away from zero on the decimal representation of
// val, so 1.005 becomes 1.01 rather than 1.00.
func RoundCurrency(val float64) float64 {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return val
	}
	rounded, _ := decimal.NewFromFloat(val).Round(constants.CurrencyPlaces).Float64()
	return rounded
}

// IsZero checks if a value is effectively zero (within tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// WithinRelativeTolerance checks if two values agree to within tolerance
// relative to the larger magnitude. Values near zero fall back to an absolute check.
func WithinRelativeTolerance(val1, val2, tolerance float64) bool {
	scale := math.Max(math.Abs(val1), math.Abs(val2))
	if scale < 1 {
		return math.Abs(val1-val2) <= tolerance
	}
	return math.Abs(val1-val2)/scale <= tolerance
}

// SafeDivide returns numerator/denominator, or fallback when the denominator
// is zero or the quotient is not finite.
func SafeDivide(numerator, denominator, fallback float64) float64 {
	if denominator == 0 {
		return fallback
	}
	q := numerator / denominator
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return fallback
	}
	return q
}

// IsFinite reports whether val is neither NaN nor infinite.
func IsFinite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}

// PercentToDecimal converts 5 (percent) into 0.05.
func PercentToDecimal(percent float64) float64 {
	return percent / constants.PercentageMultiplier
}

// DecimalToPercent converts 0.05 into 5 (percent).
func DecimalToPercent(fraction float64) float64 {
	return fraction * constants.PercentageMultiplier
}

// CalculatePercentage calculates what percentage value is of total
func CalculatePercentage(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	return (value / total) * constants.PercentageMultiplier
}

// ApplyPercentage applies a percentage to a value
func ApplyPercentage(value, percentage float64) float64 {
	return value * PercentToDecimal(percentage)
}
