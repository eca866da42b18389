// Package ratesolver recovers the annual rate implied by a starting amount,
// a final amount and a term, with or without recurring monthly contributions.
//
// Both solvers are best effort: they never fail, and report through
// Result.Converged whether the stopping criterion was met before the
// iteration cap.
package ratesolver

import (
	"math"

	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/frequency"
	"github.com/iwvelando/finance-calculators/pkg/mathutil"
	"go.uber.org/zap"
)

// Method names the algorithm that produced a Result.
type Method string

const (
	// MethodNewton is Newton's method on the lump-sum compounding equation.
	MethodNewton Method = "newton"
	// MethodProportional is the proportional-correction monthly simulation.
	MethodProportional Method = "proportional"
)

// Input describes a rate to solve for. A positive MonthlyContribution selects
// the proportional-correction solver, otherwise the lump-sum Newton solver.
type Input struct {
	Principal           float64 `json:"principal" yaml:"principal"`
	FinalAmount         float64 `json:"finalAmount" yaml:"finalAmount"`
	TermYears           int     `json:"termYears" yaml:"termYears"`
	PeriodsPerYear      int     `json:"periodsPerYear" yaml:"periodsPerYear"`
	MonthlyContribution float64 `json:"monthlyContribution,omitempty" yaml:"monthlyContribution,omitempty"`
}

// Result is the solved rate.
type Result struct {
	AnnualRatePct          float64 `json:"annualRatePct" yaml:"annualRatePct"`
	EffectiveAnnualRatePct float64 `json:"effectiveAnnualRatePct" yaml:"effectiveAnnualRatePct"`
	PeriodsPerYear         int     `json:"periodsPerYear" yaml:"periodsPerYear"`
	Method                 Method  `json:"method" yaml:"method"`
	Iterations             int     `json:"iterations" yaml:"iterations"`
	Converged              bool    `json:"converged" yaml:"converged"`
}

// Solver runs the rate solvers.
type Solver struct {
	logger *zap.Logger
}

// NewSolver creates a solver.
func NewSolver(logger *zap.Logger) *Solver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Solver{logger: logger}
}

// Solve dispatches to SolveWithContributions or SolveLumpSum.
func (s *Solver) Solve(in Input) Result {
	if in.MonthlyContribution > 0 {
		return s.SolveWithContributions(in)
	}
	return s.SolveLumpSum(in)
}

// SolveLumpSum finds r such that (1 + r/n)^(n*t) = FinalAmount/Principal with
// Newton's method, starting at 10% and stopping once a step is below 1e-4.
// Iteration stops early without converging if the derivative vanishes or the
// estimate leaves the finite range; the last finite estimate is returned.
func (s *Solver) SolveLumpSum(in Input) Result {
	n := frequency.Normalize(in.PeriodsPerYear)
	result := Result{PeriodsPerYear: n, Method: MethodNewton}
	if in.Principal <= 0 || in.FinalAmount <= 0 || in.TermYears <= 0 {
		s.logger.Warn("lump-sum rate solve skipped: principal, final amount and term must be positive",
			zap.String("op", "ratesolver.SolveLumpSum"),
			zap.Float64("principal", in.Principal),
			zap.Float64("finalAmount", in.FinalAmount),
			zap.Int("termYears", in.TermYears),
		)
		return result
	}

	periods := float64(n)
	years := float64(in.TermYears)
	nt := periods * years
	target := in.FinalAmount / in.Principal

	rate := constants.NewtonInitialGuess
	for i := 1; i <= constants.SolverMaxIterations; i++ {
		result.Iterations = i
		base := 1 + rate/periods
		f := math.Pow(base, nt) - target
		derivative := years * math.Pow(base, nt-1)
		if derivative == 0 || !mathutil.IsFinite(derivative) {
			break
		}
		next := rate - f/derivative
		if !mathutil.IsFinite(next) {
			break
		}
		if math.Abs(next-rate) < constants.NewtonTolerance {
			rate = next
			result.Converged = true
			break
		}
		rate = next
	}

	result.AnnualRatePct = mathutil.DecimalToPercent(rate)
	result.EffectiveAnnualRatePct = mathutil.DecimalToPercent(EffectiveAnnualRate(rate, n))
	s.logResult("ratesolver.SolveLumpSum", result)
	return result
}

// SolveWithContributions simulates month-by-month growth of Principal plus
// MonthlyContribution under a guessed monthly rate, and rescales the guess by
// FinalAmount/simulated until the simulated balance is within one currency
// unit of FinalAmount. This is a fixed-point heuristic: it can oscillate for
// long terms at high rates, and cannot reach targets below the contributions
// alone.
func (s *Solver) SolveWithContributions(in Input) Result {
	result := Result{PeriodsPerYear: constants.MonthsPerYear, Method: MethodProportional}
	months := in.TermYears * constants.MonthsPerYear
	if in.FinalAmount <= 0 || months <= 0 {
		s.logger.Warn("contribution rate solve skipped: final amount and term must be positive",
			zap.String("op", "ratesolver.SolveWithContributions"),
			zap.Float64("finalAmount", in.FinalAmount),
			zap.Int("termYears", in.TermYears),
		)
		return result
	}

	guess := constants.ContributionInitialGuess
	for i := 1; i <= constants.SolverMaxIterations; i++ {
		result.Iterations = i
		simulated := SimulateMonthly(in.Principal, in.MonthlyContribution, guess, months)
		if math.Abs(simulated-in.FinalAmount) < constants.ContributionTolerance {
			result.Converged = true
			break
		}
		if simulated <= 0 || !mathutil.IsFinite(simulated) {
			break
		}
		guess *= in.FinalAmount / simulated
	}

	annual := guess * constants.MonthsPerYear
	result.AnnualRatePct = mathutil.DecimalToPercent(annual)
	result.EffectiveAnnualRatePct = mathutil.DecimalToPercent(EffectiveAnnualRate(annual, constants.MonthsPerYear))
	s.logResult("ratesolver.SolveWithContributions", result)
	return result
}

// SimulateMonthly deposits contribution and then accrues monthlyRate for each
// of months periods, starting from principal.
func SimulateMonthly(principal, contribution, monthlyRate float64, months int) float64 {
	balance := principal
	for m := 0; m < months; m++ {
		balance += contribution
		balance += balance * monthlyRate
	}
	return balance
}

// EffectiveAnnualRate converts a nominal annual rate (decimal) compounded n
// times per year into the equivalent once-a-year rate.
func EffectiveAnnualRate(nominal float64, n int) float64 {
	if n <= 0 {
		return nominal
	}
	return math.Pow(1+nominal/float64(n), float64(n)) - 1
}

func (s *Solver) logResult(op string, result Result) {
	if !result.Converged {
		s.logger.Warn("rate solver did not converge, returning last estimate",
			zap.String("op", op),
			zap.Int("iterations", result.Iterations),
			zap.Float64("annualRatePct", result.AnnualRatePct),
		)
		return
	}
	s.logger.Debug("rate solver converged",
		zap.String("op", op),
		zap.Int("iterations", result.Iterations),
		zap.Float64("annualRatePct", result.AnnualRatePct),
	)
}
