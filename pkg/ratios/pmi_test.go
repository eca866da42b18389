package ratios

import (
	"math"
	"testing"
)

func TestPMIRequired(t *testing.T) {
	tests := []struct {
		name       string
		loanAmount float64
		homePrice  float64
		loanType   string
		expected   bool
	}{
		{"Above threshold conventional", 81000, 100000, "conventional", true},
		{"Exactly at threshold", 80000, 100000, "conventional", false},
		{"Below threshold", 70000, 100000, "conventional", false},
		{"Above threshold FHA", 96500, 100000, "fha", false},
		{"Above threshold VA", 100000, 100000, "va", false},
		{"Case insensitive type", 90000, 100000, "Conventional", true},
		{"Zero home price", 90000, 0, "conventional", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PMIRequired(tt.loanAmount, tt.homePrice, tt.loanType); got != tt.expected {
				t.Errorf("PMIRequired(%v, %v, %q) = %v, expected %v",
					tt.loanAmount, tt.homePrice, tt.loanType, got, tt.expected)
			}
		})
	}
}

func TestLoanToValue(t *testing.T) {
	if got := LoanToValue(81000, 100000); math.Abs(got-0.81) > 1e-12 {
		t.Errorf("LoanToValue = %v, expected 0.81", got)
	}
	if got := LoanToValue(81000, 0); got != 0 {
		t.Errorf("LoanToValue with zero price = %v, expected 0", got)
	}
}

func TestMonthlyPMI(t *testing.T) {
	if got := MonthlyPMI(240000); math.Abs(got-100) > 1e-9 {
		t.Errorf("MonthlyPMI(240000) = %v, expected 100", got)
	}
}
