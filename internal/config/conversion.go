package config

import (
	"strings"

	"github.com/iwvelando/finance-calculators/pkg/frequency"
	"github.com/iwvelando/finance-calculators/pkg/loans"
	"github.com/iwvelando/finance-calculators/pkg/projection"
	"github.com/iwvelando/finance-calculators/pkg/ratesolver"
	"github.com/iwvelando/finance-calculators/pkg/ratios"
)

// ToProjectionInput converts a CompoundConfig to a pkg/projection.Input.
func (c *CompoundConfig) ToProjectionInput() projection.Input {
	return projection.Input{
		Principal:                 c.Principal,
		MonthlyContribution:       c.MonthlyContribution,
		ContributionGrowthRatePct: c.ContributionGrowthRate,
		AnnualRatePct:             c.AnnualRate,
		PeriodsPerYear:            frequency.PeriodsPerYear(c.Frequency),
		TermYears:                 c.TermYears,
		InflationPct:              c.InflationRate,
	}
}

// ToAmortizationInput converts an AmortizationConfig to a pkg/loans.AmortizationInput.
func (c *AmortizationConfig) ToAmortizationInput() loans.AmortizationInput {
	return loans.AmortizationInput{
		Principal:       c.Principal,
		AnnualRatePct:   c.AnnualRate,
		TermYears:       c.TermYears,
		PaymentsPerYear: frequency.PeriodsPerYear(c.PaymentFrequency),
	}
}

// ToSolverInput converts a RateConfig to a pkg/ratesolver.Input.
func (c *RateConfig) ToSolverInput() ratesolver.Input {
	return ratesolver.Input{
		Principal:           c.Principal,
		FinalAmount:         c.FinalAmount,
		TermYears:           c.TermYears,
		PeriodsPerYear:      frequency.PeriodsPerYear(c.Frequency),
		MonthlyContribution: c.MonthlyContribution,
	}
}

// ToLineItems converts the invoice lines to pkg/ratios line items.
func (c *VATConfig) ToLineItems() []ratios.VatLineItem {
	items := make([]ratios.VatLineItem, 0, len(c.Items))
	for _, item := range c.Items {
		mode := ratios.VATMode(strings.ToLower(strings.TrimSpace(item.Mode)))
		if mode == "" {
			mode = ratios.VATAdd
		}
		items = append(items, ratios.VatLineItem{
			Description: item.Description,
			Price:       item.Price,
			Quantity:    item.Quantity,
			VatRatePct:  item.Rate,
			Mode:        mode,
		})
	}
	return items
}

// ToDownPaymentInput converts a DownPaymentConfig to a pkg/loans.DownPaymentInput.
func (c *DownPaymentConfig) ToDownPaymentInput() loans.DownPaymentInput {
	return loans.DownPaymentInput{
		HomePrice:       c.HomePrice,
		DownPayment:     c.DownPayment,
		DownPaymentPct:  c.DownPaymentPercent,
		AnnualRatePct:   c.AnnualRate,
		TermYears:       c.TermYears,
		LoanType:        c.LoanType,
		ClosingCostsPct: c.ClosingCostsPercent,
	}
}
