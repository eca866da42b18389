package ratios

import (
	"strings"

	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/mathutil"
)

// LoanToValue returns loanAmount/homePrice as a fraction, or 0 when the home
// price is zero.
func LoanToValue(loanAmount, homePrice float64) float64 {
	return mathutil.SafeDivide(loanAmount, homePrice, 0)
}

// PMIRequired reports whether private mortgage insurance applies. Only
// conventional loans with an LTV strictly above 80% carry PMI.
func PMIRequired(loanAmount, homePrice float64, loanType string) bool {
	if !strings.EqualFold(strings.TrimSpace(loanType), constants.LoanTypeConventional) {
		return false
	}
	return LoanToValue(loanAmount, homePrice) > constants.PMILoanToValueThreshold
}

// MonthlyPMI is the flat-rate monthly PMI premium for a loan amount.
func MonthlyPMI(loanAmount float64) float64 {
	return loanAmount * constants.PMIAnnualRate / constants.MonthsPerYear
}
