// Package validation provides configuration validation utilities.
package validation

import (
	"errors"
	"fmt"
	"math"

	"github.com/iwvelando/finance-calculators/pkg/frequency"
)

// Field is a named numeric input.
type Field struct {
	Name  string
	Value float64
}

// ValidateAmounts checks that every field is a finite, non-negative number.
// All violations are reported together.
func ValidateAmounts(fields ...Field) error {
	var errs []error
	for _, field := range fields {
		switch {
		case math.IsNaN(field.Value) || math.IsInf(field.Value, 0):
			errs = append(errs, fmt.Errorf("%s must be a finite number", field.Name))
		case field.Value < 0:
			errs = append(errs, fmt.Errorf("%s must not be negative, got %g", field.Name, field.Value))
		}
	}
	return errors.Join(errs...)
}

// ValidateTerm checks that a term in years is not negative.
func ValidateTerm(name string, years int) error {
	if years < 0 {
		return fmt.Errorf("%s must not be negative, got %d", name, years)
	}
	return nil
}

// ValidateFrequency returns a warning when label is set but not recognized,
// since the calculation will silently fall back to monthly compounding.
func ValidateFrequency(calculationName, label string) string {
	if label == "" || frequency.Known(label) {
		return ""
	}
	return fmt.Sprintf("Calculation '%s' uses unknown frequency %q - falling back to monthly", calculationName, label)
}
