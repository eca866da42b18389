package loans

import (
	"math"
	"testing"

	"go.uber.org/zap"
)

func TestPlanDownPayment(t *testing.T) {
	tests := []struct {
		name          string
		input         DownPaymentInput
		expectedLoan  float64
		expectedLTV   float64
		expectPMI     bool
		expectedPMI   float64
		expectedClose float64
	}{
		{
			name: "Ten percent down conventional",
			input: DownPaymentInput{
				HomePrice: 300000, DownPaymentPct: 10, AnnualRatePct: 6.5,
				TermYears: 30, LoanType: "conventional", ClosingCostsPct: 3,
			},
			expectedLoan:  270000,
			expectedLTV:   90,
			expectPMI:     true,
			expectedPMI:   112.5, // 270000 * 0.005 / 12
			expectedClose: 39000, // 30000 down + 9000 closing
		},
		{
			name: "Twenty percent down avoids PMI",
			input: DownPaymentInput{
				HomePrice: 300000, DownPaymentPct: 20, AnnualRatePct: 6.5,
				TermYears: 30, LoanType: "conventional",
			},
			expectedLoan:  240000,
			expectedLTV:   80,
			expectPMI:     false,
			expectedClose: 60000,
		},
		{
			name: "FHA loan never carries PMI here",
			input: DownPaymentInput{
				HomePrice: 200000, DownPaymentPct: 3.5, AnnualRatePct: 6,
				TermYears: 30, LoanType: "fha",
			},
			expectedLoan:  193000,
			expectedLTV:   96.5,
			expectPMI:     false,
			expectedClose: 7000,
		},
		{
			name: "Explicit down payment amount wins",
			input: DownPaymentInput{
				HomePrice: 400000, DownPayment: 100000, DownPaymentPct: 5, AnnualRatePct: 5,
				TermYears: 15, LoanType: "conventional",
			},
			expectedLoan:  300000,
			expectedLTV:   75,
			expectPMI:     false,
			expectedClose: 100000,
		},
		{
			name: "Down payment capped at home price",
			input: DownPaymentInput{
				HomePrice: 100000, DownPayment: 150000, AnnualRatePct: 5,
				TermYears: 15, LoanType: "conventional",
			},
			expectedLoan:  0,
			expectedLTV:   0,
			expectPMI:     false,
			expectedClose: 100000,
		},
	}

	generator := NewAmortizationScheduleGenerator(zap.NewNop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := generator.PlanDownPayment(tt.input)

			if math.Abs(result.LoanAmount-tt.expectedLoan) > 1e-6 {
				t.Errorf("LoanAmount = %.2f, expected %.2f", result.LoanAmount, tt.expectedLoan)
			}
			if math.Abs(result.LoanToValuePct-tt.expectedLTV) > 1e-6 {
				t.Errorf("LoanToValuePct = %.4f, expected %.4f", result.LoanToValuePct, tt.expectedLTV)
			}
			if result.PMIRequired != tt.expectPMI {
				t.Errorf("PMIRequired = %v, expected %v", result.PMIRequired, tt.expectPMI)
			}
			if math.Abs(result.MonthlyPMI-tt.expectedPMI) > 1e-6 {
				t.Errorf("MonthlyPMI = %.4f, expected %.4f", result.MonthlyPMI, tt.expectedPMI)
			}
			if math.Abs(result.CashToClose-tt.expectedClose) > 1e-6 {
				t.Errorf("CashToClose = %.2f, expected %.2f", result.CashToClose, tt.expectedClose)
			}
			if math.Abs(result.TotalMonthlyPayment-(result.MonthlyPrincipalInterest+result.MonthlyPMI)) > 1e-9 {
				t.Errorf("TotalMonthlyPayment = %.4f, expected P&I + PMI", result.TotalMonthlyPayment)
			}
		})
	}
}

func TestPlanDownPaymentMonthlyPayment(t *testing.T) {
	result := NewAmortizationScheduleGenerator(nil).PlanDownPayment(DownPaymentInput{
		HomePrice: 300000, DownPaymentPct: 10, AnnualRatePct: 6.5, TermYears: 30, LoanType: "conventional",
	})

	if result.MonthlyPrincipalInterest < 1700 || result.MonthlyPrincipalInterest > 1715 {
		t.Errorf("MonthlyPrincipalInterest = %.2f, expected around 1706.59", result.MonthlyPrincipalInterest)
	}
	if len(result.Yearly) != 30 {
		t.Errorf("len(Yearly) = %d, expected 30", len(result.Yearly))
	}
}
