// Package projection accumulates a balance under periodic compounding with
// recurring, optionally growing, contributions.
package projection

import (
	"math"

	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/frequency"
	"github.com/iwvelando/finance-calculators/pkg/mathutil"
	"go.uber.org/zap"
)

// Input holds the parameters of a compounding projection. Rates are percentages.
type Input struct {
	Principal                 float64 `json:"principal" yaml:"principal"`
	MonthlyContribution       float64 `json:"monthlyContribution" yaml:"monthlyContribution"`
	ContributionGrowthRatePct float64 `json:"contributionGrowthRatePct" yaml:"contributionGrowthRatePct"`
	AnnualRatePct             float64 `json:"annualRatePct" yaml:"annualRatePct"`
	PeriodsPerYear            int     `json:"periodsPerYear" yaml:"periodsPerYear"`
	TermYears                 int     `json:"termYears" yaml:"termYears"`
	InflationPct              float64 `json:"inflationPct" yaml:"inflationPct"`
}

// YearPoint is the state of the projection at the end of a year.
type YearPoint struct {
	Year                    int     `json:"year" yaml:"year"`
	Balance                 float64 `json:"balance" yaml:"balance"`
	CumulativeContributions float64 `json:"cumulativeContributions" yaml:"cumulativeContributions"`
	CumulativeInterest      float64 `json:"cumulativeInterest" yaml:"cumulativeInterest"`
	RealBalance             float64 `json:"realBalance" yaml:"realBalance"`
}

// Result summarizes a projection. TotalContributions includes the principal.
type Result struct {
	FinalBalance       float64     `json:"finalBalance" yaml:"finalBalance"`
	TotalContributions float64     `json:"totalContributions" yaml:"totalContributions"`
	TotalInterest      float64     `json:"totalInterest" yaml:"totalInterest"`
	RealFinalBalance   float64     `json:"realFinalBalance" yaml:"realFinalBalance"`
	Yearly             []YearPoint `json:"yearly" yaml:"yearly"`
}

// Projector runs compounding projections.
type Projector struct {
	logger *zap.Logger
}

// NewProjector creates a projector.
func NewProjector(logger *zap.Logger) *Projector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Projector{logger: logger}
}

// Project simulates the balance period by period. Within each period the
// contribution is deposited first and interest accrues on the new balance.
// The monthly contribution is annualized and re-split across the compounding
// frequency, and grows by ContributionGrowthRatePct after every year.
func (p *Projector) Project(in Input) Result {
	periods := frequency.Normalize(in.PeriodsPerYear)
	periodicRate := mathutil.PercentToDecimal(in.AnnualRatePct) / float64(periods)

	balance := in.Principal
	contributed := in.Principal
	monthly := in.MonthlyContribution

	result := Result{
		FinalBalance:       balance,
		TotalContributions: contributed,
		RealFinalBalance:   balance,
	}
	if in.TermYears <= 0 {
		result.Yearly = []YearPoint{}
		return result
	}

	yearly := make([]YearPoint, 0, in.TermYears)
	for year := 1; year <= in.TermYears; year++ {
		perPeriod := monthly * constants.MonthsPerYear / float64(periods)
		for period := 0; period < periods; period++ {
			balance += perPeriod
			contributed += perPeriod
			balance += balance * periodicRate
		}

		yearly = append(yearly, YearPoint{
			Year:                    year,
			Balance:                 balance,
			CumulativeContributions: contributed,
			CumulativeInterest:      balance - contributed,
			RealBalance:             Deflate(balance, in.InflationPct, year),
		})

		if in.ContributionGrowthRatePct != 0 {
			monthly *= 1 + mathutil.PercentToDecimal(in.ContributionGrowthRatePct)
		}
	}

	last := yearly[len(yearly)-1]
	result.FinalBalance = last.Balance
	result.TotalContributions = last.CumulativeContributions
	result.TotalInterest = last.CumulativeInterest
	result.RealFinalBalance = last.RealBalance
	result.Yearly = yearly

	p.logger.Debug("projection complete",
		zap.String("op", "projection.Project"),
		zap.Int("periodsPerYear", periods),
		zap.Int("termYears", in.TermYears),
		zap.Float64("finalBalance", result.FinalBalance),
	)
	return result
}

// Deflate discounts a nominal amount by inflationPct compounded over years.
// A zero inflation rate returns the amount unchanged.
func Deflate(amount, inflationPct float64, years int) float64 {
	if inflationPct == 0 {
		return amount
	}
	return amount / math.Pow(1+mathutil.PercentToDecimal(inflationPct), float64(years))
}
