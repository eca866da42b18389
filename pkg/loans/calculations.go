// Package loans provides common loan processing utilities.
package loans

import (
	"math"

	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/mathutil"
	"go.uber.org/zap"
)

// AmortizationInput describes a level-payment loan. Rates are percentages.
type AmortizationInput struct {
	Principal       float64 `json:"principal" yaml:"principal"`
	AnnualRatePct   float64 `json:"annualRatePct" yaml:"annualRatePct"`
	TermYears       int     `json:"termYears" yaml:"termYears"`
	PaymentsPerYear int     `json:"paymentsPerYear" yaml:"paymentsPerYear"`
}

// AmortizationResult summarizes the cost of a loan.
type AmortizationResult struct {
	PeriodicPayment float64 `json:"periodicPayment" yaml:"periodicPayment"`
	NumPayments     int     `json:"numPayments" yaml:"numPayments"`
	TotalInterest   float64 `json:"totalInterest" yaml:"totalInterest"`
	TotalPaid       float64 `json:"totalPaid" yaml:"totalPaid"`
}

// Payment holds the values for a given payment.
type Payment struct {
	Period             int     `json:"period" yaml:"period"`
	Payment            float64 `json:"payment" yaml:"payment"`
	Principal          float64 `json:"principal" yaml:"principal"`
	Interest           float64 `json:"interest" yaml:"interest"`
	RemainingPrincipal float64 `json:"remainingPrincipal" yaml:"remainingPrincipal"`
}

// YearSummary rolls a year of payments up for charting.
type YearSummary struct {
	Year               int     `json:"year" yaml:"year"`
	Principal          float64 `json:"principal" yaml:"principal"`
	Interest           float64 `json:"interest" yaml:"interest"`
	RemainingPrincipal float64 `json:"remainingPrincipal" yaml:"remainingPrincipal"`
}

func (in AmortizationInput) paymentsPerYear() int {
	if in.PaymentsPerYear <= 0 {
		return constants.MonthsPerYear
	}
	return in.PaymentsPerYear
}

// NumPayments is the total number of payments over the term.
func (in AmortizationInput) NumPayments() int {
	if in.TermYears <= 0 {
		return 0
	}
	return in.TermYears * in.paymentsPerYear()
}

// CalculatePeriodicPayment calculates the level payment for a loan using the
// standard amortization formula. A zero rate divides the principal evenly and a
// non-positive payment count yields zero.
func CalculatePeriodicPayment(principal, annualInterestRate float64, paymentsPerYear, numPayments int) float64 {
	if numPayments <= 0 {
		return 0
	}
	if paymentsPerYear <= 0 {
		paymentsPerYear = constants.MonthsPerYear
	}
	if annualInterestRate == 0 {
		// For zero interest, simply divide the principal by term
		return principal / float64(numPayments)
	}

	periodicInterestRate := annualInterestRate / (constants.PercentageMultiplier * float64(paymentsPerYear))
	power := math.Pow((1.00 + periodicInterestRate), float64(numPayments))
	discountFactor := (power - 1.00) / power
	return principal * periodicInterestRate / discountFactor
}

// CalculateInterestPayment calculates the interest portion of a payment.
func CalculateInterestPayment(remainingPrincipal, annualInterestRate float64, paymentsPerYear int) float64 {
	if paymentsPerYear <= 0 {
		paymentsPerYear = constants.MonthsPerYear
	}
	return remainingPrincipal * annualInterestRate / (constants.PercentageMultiplier * float64(paymentsPerYear))
}

// Amortize computes the level payment and lifetime interest of a loan.
func Amortize(in AmortizationInput) AmortizationResult {
	n := in.NumPayments()
	if n == 0 {
		return AmortizationResult{TotalPaid: in.Principal}
	}
	payment := CalculatePeriodicPayment(in.Principal, in.AnnualRatePct, in.paymentsPerYear(), n)
	totalInterest := payment*float64(n) - in.Principal
	return AmortizationResult{
		PeriodicPayment: payment,
		NumPayments:     n,
		TotalInterest:   totalInterest,
		TotalPaid:       in.Principal + totalInterest,
	}
}

// AmortizationScheduleGenerator provides utilities for generating loan amortization schedules
type AmortizationScheduleGenerator struct {
	logger *zap.Logger
}

// NewAmortizationScheduleGenerator creates a new generator instance
func NewAmortizationScheduleGenerator(logger *zap.Logger) *AmortizationScheduleGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AmortizationScheduleGenerator{logger: logger}
}

// GenerateSchedule creates a complete amortization schedule for a loan, one
// row per payment period.
func (g *AmortizationScheduleGenerator) GenerateSchedule(in AmortizationInput) []Payment {
	n := in.NumPayments()
	if n == 0 {
		return []Payment{}
	}
	perYear := in.paymentsPerYear()
	levelPayment := CalculatePeriodicPayment(in.Principal, in.AnnualRatePct, perYear, n)

	schedule := make([]Payment, 0, n)
	remaining := in.Principal
	for period := 1; period <= n; period++ {
		var current Payment
		current.Period = period
		current.Interest = CalculateInterestPayment(remaining, in.AnnualRatePct, perYear)
		current.Principal = levelPayment - current.Interest

		if period == n || mathutil.Round(remaining-current.Principal) == 0 {
			// We will get machine error otherwise so just settle the balance.
			current.Principal = remaining
			current.Payment = current.Principal + current.Interest
			current.RemainingPrincipal = 0.00
			schedule = append(schedule, current)
			if period < n {
				g.logger.Debug("loan settled before final period",
					zap.String("op", "loans.GenerateSchedule"),
					zap.Int("period", period),
					zap.Int("numPayments", n),
				)
			}
			break
		}

		current.Payment = levelPayment
		current.RemainingPrincipal = remaining - current.Principal
		remaining = current.RemainingPrincipal
		schedule = append(schedule, current)
	}

	return schedule
}

// YearlySummary groups a schedule into years of paymentsPerYear periods.
func YearlySummary(schedule []Payment, paymentsPerYear int) []YearSummary {
	if paymentsPerYear <= 0 {
		paymentsPerYear = constants.MonthsPerYear
	}
	years := make([]YearSummary, 0, (len(schedule)+paymentsPerYear-1)/paymentsPerYear)
	for _, payment := range schedule {
		year := (payment.Period-1)/paymentsPerYear + 1
		if len(years) == 0 || years[len(years)-1].Year != year {
			years = append(years, YearSummary{Year: year})
		}
		current := &years[len(years)-1]
		current.Principal += payment.Principal
		current.Interest += payment.Interest
		current.RemainingPrincipal = payment.RemainingPrincipal
	}
	return years
}
