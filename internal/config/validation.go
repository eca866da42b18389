package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iwvelando/finance-calculators/pkg/ratios"
	"github.com/iwvelando/finance-calculators/pkg/validation"
)

// Validate checks that the calculation names a supported type, carries the
// matching section and holds only finite, non-negative numbers.
func (c Calculation) Validate() error {
	var err error
	switch c.Type {
	case TypeCompound:
		err = c.Compound.validate()
	case TypeAmortization:
		err = c.Amortization.validate()
	case TypeRate:
		err = c.Rate.validate()
	case TypeMargin:
		err = c.Margin.validate()
	case TypeVAT:
		err = c.VAT.validate()
	case TypeDownPayment:
		err = c.DownPayment.validate()
	default:
		return fmt.Errorf("calculation %q: unsupported type %q, expected one of %s",
			c.Name, c.Type, strings.Join(Types, ", "))
	}
	if err != nil {
		return fmt.Errorf("calculation %q: %w", c.Name, err)
	}
	return nil
}

var errMissingSection = errors.New("missing configuration section for calculation type")

func (c *CompoundConfig) validate() error {
	if c == nil {
		return errMissingSection
	}
	return errors.Join(
		validation.ValidateAmounts(
			validation.Field{Name: "principal", Value: c.Principal},
			validation.Field{Name: "monthlyContribution", Value: c.MonthlyContribution},
			validation.Field{Name: "contributionGrowthRate", Value: c.ContributionGrowthRate},
			validation.Field{Name: "annualRate", Value: c.AnnualRate},
			validation.Field{Name: "inflationRate", Value: c.InflationRate},
		),
		validation.ValidateTerm("termYears", c.TermYears),
	)
}

func (c *AmortizationConfig) validate() error {
	if c == nil {
		return errMissingSection
	}
	return errors.Join(
		validation.ValidateAmounts(
			validation.Field{Name: "principal", Value: c.Principal},
			validation.Field{Name: "annualRate", Value: c.AnnualRate},
		),
		validation.ValidateTerm("termYears", c.TermYears),
	)
}

func (c *RateConfig) validate() error {
	if c == nil {
		return errMissingSection
	}
	return errors.Join(
		validation.ValidateAmounts(
			validation.Field{Name: "principal", Value: c.Principal},
			validation.Field{Name: "finalAmount", Value: c.FinalAmount},
			validation.Field{Name: "monthlyContribution", Value: c.MonthlyContribution},
		),
		validation.ValidateTerm("termYears", c.TermYears),
	)
}

func (c *MarginConfig) validate() error {
	if c == nil {
		return errMissingSection
	}
	fields := []validation.Field{
		{Name: "cost", Value: c.Cost},
		{Name: "price", Value: c.Price},
	}
	if c.TargetMargin != nil {
		fields = append(fields, validation.Field{Name: "targetMargin", Value: *c.TargetMargin})
	}
	return validation.ValidateAmounts(fields...)
}

func (c *VATConfig) validate() error {
	if c == nil {
		return errMissingSection
	}
	var errs []error
	for i, item := range c.Items {
		if err := validation.ValidateAmounts(
			validation.Field{Name: fmt.Sprintf("items[%d].price", i), Value: item.Price},
			validation.Field{Name: fmt.Sprintf("items[%d].quantity", i), Value: item.Quantity},
			validation.Field{Name: fmt.Sprintf("items[%d].rate", i), Value: item.Rate},
		); err != nil {
			errs = append(errs, err)
		}
		switch ratios.VATMode(strings.ToLower(strings.TrimSpace(item.Mode))) {
		case "", ratios.VATAdd, ratios.VATRemove:
		default:
			errs = append(errs, fmt.Errorf("items[%d].mode must be %q or %q, got %q",
				i, ratios.VATAdd, ratios.VATRemove, item.Mode))
		}
	}
	return errors.Join(errs...)
}

func (c *DownPaymentConfig) validate() error {
	if c == nil {
		return errMissingSection
	}
	return errors.Join(
		validation.ValidateAmounts(
			validation.Field{Name: "homePrice", Value: c.HomePrice},
			validation.Field{Name: "downPayment", Value: c.DownPayment},
			validation.Field{Name: "downPaymentPercent", Value: c.DownPaymentPercent},
			validation.Field{Name: "annualRate", Value: c.AnnualRate},
			validation.Field{Name: "closingCostsPercent", Value: c.ClosingCostsPercent},
		),
		validation.ValidateTerm("termYears", c.TermYears),
	)
}
