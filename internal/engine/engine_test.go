package engine

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/iwvelando/finance-calculators/internal/config"
	"github.com/iwvelando/finance-calculators/pkg/ratesolver"
	"github.com/iwvelando/finance-calculators/pkg/ratios"
	"go.uber.org/zap"
)

func float64Ptr(v float64) *float64 {
	return &v
}

func TestComputeCompound(t *testing.T) {
	engine := New(zap.NewNop())

	result, err := engine.Compute(config.Calculation{
		Name: "savings",
		Type: config.TypeCompound,
		Compound: &config.CompoundConfig{
			Principal:  10000,
			AnnualRate: 5,
			Frequency:  "monthly",
			TermYears:  10,
		},
	})
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	if result.Projection == nil {
		t.Fatal("expected projection output")
	}
	if math.Abs(result.Projection.FinalBalance-16470.09) > 0.01 {
		t.Errorf("FinalBalance = %.4f, expected ~16470.09", result.Projection.FinalBalance)
	}
	if result.Amortization != nil || result.Rate != nil || result.Margin != nil || result.VAT != nil || result.DownPayment != nil {
		t.Error("expected only the projection output to be set")
	}
	if result.Name() != "savings" {
		t.Errorf("Name() = %q, expected savings", result.Name())
	}
}

func TestComputeAmortization(t *testing.T) {
	result, err := New(nil).Compute(config.Calculation{
		Name: "mortgage",
		Type: config.TypeAmortization,
		Amortization: &config.AmortizationConfig{
			Principal:        300000,
			AnnualRate:       4,
			TermYears:        30,
			PaymentFrequency: "monthly",
		},
	})
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	if math.Abs(result.Amortization.Summary.PeriodicPayment-1432.25) > 0.01 {
		t.Errorf("PeriodicPayment = %.4f, expected ~1432.25", result.Amortization.Summary.PeriodicPayment)
	}
	if len(result.Amortization.Yearly) != 30 {
		t.Errorf("len(Yearly) = %d, expected 30", len(result.Amortization.Yearly))
	}
}

func TestComputeRate(t *testing.T) {
	result, err := New(nil).Compute(config.Calculation{
		Name: "implied",
		Type: config.TypeRate,
		Rate: &config.RateConfig{Principal: 10000, FinalAmount: 16470.09, TermYears: 10, Frequency: "monthly"},
	})
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	if result.Rate.Method != ratesolver.MethodNewton || !result.Rate.Converged {
		t.Errorf("Rate = %+v, expected converged Newton solve", result.Rate)
	}
	if math.Abs(result.Rate.AnnualRatePct-5) > 0.005 {
		t.Errorf("AnnualRatePct = %.6f, expected ~5", result.Rate.AnnualRatePct)
	}
}

func TestComputeMargin(t *testing.T) {
	engine := New(nil)

	fromPrice, err := engine.Compute(config.Calculation{
		Name:   "retail",
		Type:   config.TypeMargin,
		Margin: &config.MarginConfig{Cost: 80, Price: 100},
	})
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if math.Abs(fromPrice.Margin.MarginPct-20) > 1e-9 || math.Abs(fromPrice.Margin.MarkupPct-25) > 1e-9 {
		t.Errorf("Margin = %+v, expected 20%% margin and 25%% markup", fromPrice.Margin)
	}

	fromTarget, err := engine.Compute(config.Calculation{
		Name:   "target",
		Type:   config.TypeMargin,
		Margin: &config.MarginConfig{Cost: 80, TargetMargin: float64Ptr(20)},
	})
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if math.Abs(fromTarget.Margin.Price-100) > 1e-9 {
		t.Errorf("Price = %.6f, expected 100", fromTarget.Margin.Price)
	}
}

func TestComputeVAT(t *testing.T) {
	result, err := New(nil).Compute(config.Calculation{
		Name: "invoice",
		Type: config.TypeVAT,
		VAT: &config.VATConfig{Items: []config.VATItemConfig{
			{Description: "net line", Price: 100, Rate: 20, Mode: "add"},
			{Description: "gross line", Price: 120, Rate: 20, Mode: "remove"},
		}},
	})
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	if math.Abs(result.VAT.TotalVat-40) > 1e-9 {
		t.Errorf("TotalVat = %.6f, expected 40", result.VAT.TotalVat)
	}
	if math.Abs(result.VAT.TotalGross-240) > 1e-9 {
		t.Errorf("TotalGross = %.6f, expected 240", result.VAT.TotalGross)
	}
}

func TestComputeDownPayment(t *testing.T) {
	result, err := New(nil).Compute(config.Calculation{
		Name: "home",
		Type: config.TypeDownPayment,
		DownPayment: &config.DownPaymentConfig{
			HomePrice: 300000, DownPaymentPercent: 19, AnnualRate: 6, TermYears: 30, LoanType: "conventional",
		},
	})
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	if !result.DownPayment.PMIRequired {
		t.Errorf("PMIRequired = false, expected true at 81%% LTV")
	}
}

func TestComputeRejectsInvalidInput(t *testing.T) {
	_, err := New(nil).Compute(config.Calculation{
		Name:     "bad",
		Type:     config.TypeCompound,
		Compound: &config.CompoundConfig{Principal: -1},
	})
	if err == nil || !strings.Contains(err.Error(), "principal must not be negative") {
		t.Errorf("Compute() error = %v, expected negative principal error", err)
	}
}

func TestComputeAll(t *testing.T) {
	engine := New(nil)
	calcs := []config.Calculation{
		{Name: "a", Type: config.TypeMargin, Margin: &config.MarginConfig{Cost: 1, Price: 2}},
		{Name: "b", Type: config.TypeVAT, VAT: &config.VATConfig{}},
		{Name: "c", Type: "unknown"},
		{Name: "d", Type: config.TypeMargin, Margin: &config.MarginConfig{Cost: 1, Price: 2}},
	}

	results, err := engine.ComputeAll(calcs)
	if err == nil {
		t.Fatal("ComputeAll() expected error for unknown type")
	}
	if len(results) != 2 {
		t.Errorf("len(results) = %d, expected the 2 results before the failure", len(results))
	}

	results, err = engine.ComputeAll(calcs[:2])
	if err != nil {
		t.Fatalf("ComputeAll() error = %v", err)
	}
	if results[0].Name() != "a" || results[1].Name() != "b" {
		t.Errorf("results out of order: %s, %s", results[0].Name(), results[1].Name())
	}
}

func TestComputeIsRepeatable(t *testing.T) {
	engine := New(nil)
	calc := config.Calculation{
		Name: "growth",
		Type: config.TypeCompound,
		Compound: &config.CompoundConfig{
			Principal: 5000, MonthlyContribution: 100, ContributionGrowthRate: 3,
			AnnualRate: 6, Frequency: "daily", TermYears: 20, InflationRate: 2,
		},
	}

	first, err := engine.Compute(calc)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	second, err := engine.Compute(calc)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("Compute returned different results for identical input")
	}
}

func TestComputeRejectsOverflow(t *testing.T) {
	result, err := New(nil).Compute(config.Calculation{
		Name: "runaway",
		Type: config.TypeCompound,
		Compound: &config.CompoundConfig{
			Principal:  1000,
			AnnualRate: 100000,
			Frequency:  "daily",
			TermYears:  40,
		},
	})
	if err == nil {
		t.Fatalf("expected an error, got result %+v", result.Projection)
	}
	if !errors.Is(err, ErrNonFiniteResult) {
		t.Errorf("error = %v, expected ErrNonFiniteResult", err)
	}
	if !strings.Contains(err.Error(), "runaway") || !strings.Contains(err.Error(), "Projection.") {
		t.Errorf("error %q should name the calculation and the overflowing field", err)
	}
	if result.Projection != nil {
		t.Error("expected no projection output on overflow")
	}
}

func TestFirstNonFinite(t *testing.T) {
	finite := Result{Margin: &ratios.MarginResult{Cost: 60, Price: 100}}
	if field, _, ok := firstNonFinite(reflect.ValueOf(finite), ""); ok {
		t.Errorf("finite result reported non-finite field %s", field)
	}

	overflowed := Result{VAT: &ratios.VatSummary{
		Lines: []ratios.VatResult{{NetAmount: 1}, {NetAmount: math.Inf(1)}},
	}}
	field, value, ok := firstNonFinite(reflect.ValueOf(overflowed), "")
	if !ok {
		t.Fatal("expected the infinite line item to be found")
	}
	if field != "VAT.Lines[1].NetAmount" {
		t.Errorf("field = %q, expected VAT.Lines[1].NetAmount", field)
	}
	if !math.IsInf(value, 1) {
		t.Errorf("value = %v, expected +Inf", value)
	}
}
