// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/finance-calculators/internal/engine"
)

// FindResult finds a calculation result by name in the results slice.
// Returns a pointer to the result if found, nil otherwise.
func FindResult(results []engine.Result, name string) *engine.Result {
	for i := range results {
		if results[i].Name() == name {
			return &results[i]
		}
	}
	return nil
}
