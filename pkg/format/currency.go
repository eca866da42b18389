// Package format renders numbers for display.
package format

import (
	"math"
	"strings"

	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/shopspring/decimal"
)

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	if marker, ok := nonFinite(amount); ok {
		return marker
	}
	d := decimal.NewFromFloat(amount).Round(constants.CurrencyPlaces)
	formatted := formatPositiveCurrency(d.Abs())
	if d.IsNegative() {
		return "-$" + formatted
	}
	return "$" + formatted
}

// NumericCurrency returns a currency string without a currency symbol but with separators (e.g., "-1,234.56").
func NumericCurrency(amount float64) string {
	if marker, ok := nonFinite(amount); ok {
		return marker
	}
	d := decimal.NewFromFloat(amount).Round(constants.CurrencyPlaces)
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	return sign + formatPositiveCurrency(d.Abs())
}

// Percent renders a percentage with two decimals (e.g., "5.00%").
func Percent(pct float64) string {
	if marker, ok := nonFinite(pct); ok {
		return marker + "%"
	}
	return decimal.NewFromFloat(pct).StringFixed(constants.CurrencyPlaces) + "%"
}

// nonFinite returns "Inf", "-Inf" or "NaN" for values that have no decimal form.
func nonFinite(value float64) (string, bool) {
	switch {
	case math.IsNaN(value):
		return "NaN", true
	case math.IsInf(value, 1):
		return "Inf", true
	case math.IsInf(value, -1):
		return "-Inf", true
	}
	return "", false
}

func formatPositiveCurrency(value decimal.Decimal) string {
	formatted := value.StringFixed(constants.CurrencyPlaces)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + "." + decPart
}
