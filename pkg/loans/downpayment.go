package loans

import (
	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/mathutil"
	"github.com/iwvelando/finance-calculators/pkg/ratios"
)

// DownPaymentInput describes a home purchase. When DownPayment is positive it
// takes precedence over DownPaymentPct.
type DownPaymentInput struct {
	HomePrice       float64 `json:"homePrice" yaml:"homePrice"`
	DownPayment     float64 `json:"downPayment,omitempty" yaml:"downPayment,omitempty"`
	DownPaymentPct  float64 `json:"downPaymentPct" yaml:"downPaymentPct"`
	AnnualRatePct   float64 `json:"annualRatePct" yaml:"annualRatePct"`
	TermYears       int     `json:"termYears" yaml:"termYears"`
	LoanType        string  `json:"loanType" yaml:"loanType"`
	ClosingCostsPct float64 `json:"closingCostsPct" yaml:"closingCostsPct"`
}

// DownPaymentResult is the monthly and upfront cost of a home purchase.
type DownPaymentResult struct {
	DownPayment              float64       `json:"downPayment" yaml:"downPayment"`
	DownPaymentPct           float64       `json:"downPaymentPct" yaml:"downPaymentPct"`
	LoanAmount               float64       `json:"loanAmount" yaml:"loanAmount"`
	LoanToValuePct           float64       `json:"loanToValuePct" yaml:"loanToValuePct"`
	PMIRequired              bool          `json:"pmiRequired" yaml:"pmiRequired"`
	MonthlyPMI               float64       `json:"monthlyPmi" yaml:"monthlyPmi"`
	MonthlyPrincipalInterest float64       `json:"monthlyPrincipalInterest" yaml:"monthlyPrincipalInterest"`
	TotalMonthlyPayment      float64       `json:"totalMonthlyPayment" yaml:"totalMonthlyPayment"`
	TotalInterest            float64       `json:"totalInterest" yaml:"totalInterest"`
	ClosingCosts             float64       `json:"closingCosts" yaml:"closingCosts"`
	CashToClose              float64       `json:"cashToClose" yaml:"cashToClose"`
	Yearly                   []YearSummary `json:"yearly" yaml:"yearly"`
}

// PlanDownPayment sizes the loan left after a down payment and prices its
// monthly cost, including PMI for conventional loans above 80% LTV.
func (g *AmortizationScheduleGenerator) PlanDownPayment(in DownPaymentInput) DownPaymentResult {
	down := in.DownPayment
	if down <= 0 {
		down = mathutil.ApplyPercentage(in.HomePrice, in.DownPaymentPct)
	}
	if down > in.HomePrice {
		down = in.HomePrice
	}
	loanAmount := in.HomePrice - down

	loan := AmortizationInput{
		Principal:       loanAmount,
		AnnualRatePct:   in.AnnualRatePct,
		TermYears:       in.TermYears,
		PaymentsPerYear: constants.MonthsPerYear,
	}
	amortized := Amortize(loan)

	result := DownPaymentResult{
		DownPayment:              down,
		DownPaymentPct:           mathutil.CalculatePercentage(down, in.HomePrice),
		LoanAmount:               loanAmount,
		LoanToValuePct:           mathutil.DecimalToPercent(ratios.LoanToValue(loanAmount, in.HomePrice)),
		PMIRequired:              ratios.PMIRequired(loanAmount, in.HomePrice, in.LoanType),
		MonthlyPrincipalInterest: amortized.PeriodicPayment,
		TotalInterest:            amortized.TotalInterest,
		ClosingCosts:             mathutil.ApplyPercentage(in.HomePrice, in.ClosingCostsPct),
		Yearly:                   YearlySummary(g.GenerateSchedule(loan), constants.MonthsPerYear),
	}
	if result.PMIRequired {
		result.MonthlyPMI = ratios.MonthlyPMI(loanAmount)
	}
	result.TotalMonthlyPayment = result.MonthlyPrincipalInterest + result.MonthlyPMI
	result.CashToClose = result.DownPayment + result.ClosingCosts
	return result
}
