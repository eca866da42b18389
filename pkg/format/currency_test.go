package format

import (
	"math"
	"testing"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Zero", 0, "$0.00"},
		{"Small", 5.5, "$5.50"},
		{"Thousands", 1432.2458863963, "$1,432.25"},
		{"Millions", 1234567.891, "$1,234,567.89"},
		{"Negative", -1234.56, "-$1,234.56"},
		{"Midpoint rounds away from zero", 2.675, "$2.68"},
		{"Tiny negative rounds to zero", -0.001, "$0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Currency(tt.amount); got != tt.expected {
				t.Errorf("Currency(%v) = %q, expected %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestNumericCurrency(t *testing.T) {
	tests := []struct {
		amount   float64
		expected string
	}{
		{215608.519, "215,608.52"},
		{-16470.0949, "-16,470.09"},
		{999.999, "1,000.00"},
	}

	for _, tt := range tests {
		if got := NumericCurrency(tt.amount); got != tt.expected {
			t.Errorf("NumericCurrency(%v) = %q, expected %q", tt.amount, got, tt.expected)
		}
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(5); got != "5.00%" {
		t.Errorf("Percent(5) = %q, expected 5.00%%", got)
	}
	if got := Percent(12.682503); got != "12.68%" {
		t.Errorf("Percent(12.682503) = %q, expected 12.68%%", got)
	}
}

func TestNonFiniteValues(t *testing.T) {
	tests := []struct {
		name     string
		format   func(float64) string
		value    float64
		expected string
	}{
		{"Currency +Inf", Currency, math.Inf(1), "Inf"},
		{"Currency -Inf", Currency, math.Inf(-1), "-Inf"},
		{"Currency NaN", Currency, math.NaN(), "NaN"},
		{"NumericCurrency +Inf", NumericCurrency, math.Inf(1), "Inf"},
		{"NumericCurrency NaN", NumericCurrency, math.NaN(), "NaN"},
		{"Percent +Inf", Percent, math.Inf(1), "Inf%"},
		{"Percent NaN", Percent, math.NaN(), "NaN%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.format(tt.value); got != tt.expected {
				t.Errorf("%s = %q, expected %q", tt.name, got, tt.expected)
			}
		})
	}
}
