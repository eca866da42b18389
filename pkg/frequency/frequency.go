// Package frequency maps compounding and payment frequency labels to the
// number of periods per year.
package frequency

import (
	"strings"

	"github.com/iwvelando/finance-calculators/pkg/constants"
)

var periodsByLabel = map[string]int{
	constants.FrequencyAnnually:     1,
	constants.FrequencySemiannually: 2,
	constants.FrequencyQuarterly:    4,
	constants.FrequencyMonthly:      constants.MonthsPerYear,
	constants.FrequencyDaily:        constants.DaysPerYear,
}

// PeriodsPerYear returns the number of compounding periods per year for a
// frequency label. Missing or unrecognized labels fall back to monthly.
func PeriodsPerYear(label string) int {
	if n, ok := periodsByLabel[strings.ToLower(strings.TrimSpace(label))]; ok {
		return n
	}
	return constants.DefaultPeriodsPerYear
}

// Known reports whether label is one of the recognized frequencies.
func Known(label string) bool {
	_, ok := periodsByLabel[strings.ToLower(strings.TrimSpace(label))]
	return ok
}

// Label returns the frequency label for a periods-per-year count, or the
// monthly label when the count is not one of the recognized values.
func Label(periodsPerYear int) string {
	for label, n := range periodsByLabel {
		if n == periodsPerYear {
			return label
		}
	}
	return constants.FrequencyMonthly
}

// Normalize returns periodsPerYear unchanged when it is a recognized count and
// the monthly default otherwise.
func Normalize(periodsPerYear int) int {
	for _, n := range periodsByLabel {
		if n == periodsPerYear {
			return n
		}
	}
	return constants.DefaultPeriodsPerYear
}
