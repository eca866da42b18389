// Package engine computes calculator results from configured calculations.
// Each call is a pure recomputation from its input; nothing is retained
// between calls.
package engine

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/iwvelando/finance-calculators/internal/config"
	"github.com/iwvelando/finance-calculators/pkg/loans"
	"github.com/iwvelando/finance-calculators/pkg/mathutil"
	"github.com/iwvelando/finance-calculators/pkg/projection"
	"github.com/iwvelando/finance-calculators/pkg/ratesolver"
	"github.com/iwvelando/finance-calculators/pkg/ratios"
	"go.uber.org/zap"
)

// ErrNonFiniteResult is returned when valid inputs overflow to an infinite
// or undefined result.
var ErrNonFiniteResult = errors.New("result is not a finite number")

// Result pairs a calculation with its output. Only the field matching the
// calculation type is set.
type Result struct {
	Input        config.Calculation       `json:"input" yaml:"input"`
	Projection   *projection.Result       `json:"projection,omitempty" yaml:"projection,omitempty"`
	Amortization *AmortizationOutput      `json:"amortization,omitempty" yaml:"amortization,omitempty"`
	Rate         *ratesolver.Result       `json:"rate,omitempty" yaml:"rate,omitempty"`
	Margin       *ratios.MarginResult     `json:"margin,omitempty" yaml:"margin,omitempty"`
	VAT          *ratios.VatSummary       `json:"vat,omitempty" yaml:"vat,omitempty"`
	DownPayment  *loans.DownPaymentResult `json:"downPayment,omitempty" yaml:"downPayment,omitempty"`
}

// Name returns the calculation name.
func (r Result) Name() string {
	return r.Input.Name
}

// AmortizationOutput is the loan summary plus its yearly roll-up.
type AmortizationOutput struct {
	Summary loans.AmortizationResult `json:"summary" yaml:"summary"`
	Yearly  []loans.YearSummary      `json:"yearly" yaml:"yearly"`
}

// Engine runs calculations.
type Engine struct {
	logger    *zap.Logger
	projector *projection.Projector
	solver    *ratesolver.Solver
	schedules *loans.AmortizationScheduleGenerator
}

// New creates an engine.
func New(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		logger:    logger,
		projector: projection.NewProjector(logger),
		solver:    ratesolver.NewSolver(logger),
		schedules: loans.NewAmortizationScheduleGenerator(logger),
	}
}

// Compute validates a calculation and evaluates it.
func (e *Engine) Compute(calc config.Calculation) (Result, error) {
	if err := calc.Validate(); err != nil {
		return Result{}, err
	}

	e.logger.Debug(fmt.Sprintf("computing %s calculation %s", calc.Type, calc.Name),
		zap.String("op", "engine.Compute"),
	)

	result := Result{Input: calc}
	switch calc.Type {
	case config.TypeCompound:
		projected := e.projector.Project(calc.Compound.ToProjectionInput())
		result.Projection = &projected
	case config.TypeAmortization:
		in := calc.Amortization.ToAmortizationInput()
		result.Amortization = &AmortizationOutput{
			Summary: loans.Amortize(in),
			Yearly:  loans.YearlySummary(e.schedules.GenerateSchedule(in), in.PaymentsPerYear),
		}
	case config.TypeRate:
		solved := e.solver.Solve(calc.Rate.ToSolverInput())
		result.Rate = &solved
	case config.TypeMargin:
		var margin ratios.MarginResult
		if calc.Margin.TargetMargin != nil {
			margin = ratios.PriceFromMargin(calc.Margin.Cost, *calc.Margin.TargetMargin)
		} else {
			margin = ratios.MarginFromCostPrice(calc.Margin.Cost, calc.Margin.Price)
		}
		result.Margin = &margin
	case config.TypeVAT:
		summary := ratios.SummarizeVAT(calc.VAT.ToLineItems())
		result.VAT = &summary
	case config.TypeDownPayment:
		plan := e.schedules.PlanDownPayment(calc.DownPayment.ToDownPaymentInput())
		result.DownPayment = &plan
	}

	if field, value, ok := firstNonFinite(reflect.ValueOf(result), ""); ok {
		e.logger.Warn("calculation overflowed",
			zap.String("op", "engine.Compute"),
			zap.String("calculation", calc.Name),
			zap.String("field", field),
		)
		return Result{}, fmt.Errorf("calculation %q: %s = %v: %w", calc.Name, field, value, ErrNonFiniteResult)
	}
	return result, nil
}

// firstNonFinite walks v and reports the path of the first float64 that is
// NaN or infinite.
func firstNonFinite(v reflect.Value, path string) (string, float64, bool) {
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return "", 0, false
		}
		return firstNonFinite(v.Elem(), path)
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			field := v.Type().Field(i)
			if !field.IsExported() {
				continue
			}
			name := field.Name
			if path != "" {
				name = path + "." + name
			}
			if found, value, ok := firstNonFinite(v.Field(i), name); ok {
				return found, value, true
			}
		}
	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			if found, value, ok := firstNonFinite(v.Index(i), fmt.Sprintf("%s[%d]", path, i)); ok {
				return found, value, true
			}
		}
	case reflect.Float64:
		if !mathutil.IsFinite(v.Float()) {
			return path, v.Float(), true
		}
	}
	return "", 0, false
}

// ComputeAll evaluates calculations in order and stops at the first error.
func (e *Engine) ComputeAll(calcs []config.Calculation) ([]Result, error) {
	results := make([]Result, 0, len(calcs))
	for _, calc := range calcs {
		result, err := e.Compute(calc)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	e.logger.Info("calculations complete",
		zap.String("op", "engine.ComputeAll"),
		zap.Int("count", len(results)),
	)
	return results, nil
}
