// Package constants provides shared constants for the finance-calculators application.
package constants

// Compounding frequency labels accepted by the normalizer.
const (
	FrequencyAnnually     = "annually"
	FrequencySemiannually = "semiannually"
	FrequencyQuarterly    = "quarterly"
	FrequencyMonthly      = "monthly"
	FrequencyDaily        = "daily"
)

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DaysPerYear is the number of compounding periods for daily compounding
	DaysPerYear = 365

	// DefaultPeriodsPerYear is used when a frequency label is missing or unknown
	DefaultPeriodsPerYear = MonthsPerYear

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyPlaces is the number of decimal places shown for currency
	CurrencyPlaces = 2

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Rate solver constants
const (
	// NewtonInitialGuess is the starting annual rate (as a decimal) for the lump-sum solver
	NewtonInitialGuess = 0.10

	// NewtonTolerance is the step size below which the lump-sum solver stops
	NewtonTolerance = 1e-4

	// SolverMaxIterations caps both rate solvers
	SolverMaxIterations = 100

	// ContributionInitialGuess is the starting monthly rate for the contribution solver
	ContributionInitialGuess = 0.05 / MonthsPerYear

	// ContributionTolerance is the absolute currency gap at which the contribution solver stops
	ContributionTolerance = 1.0
)

// Mortgage constants
const (
	// PMILoanToValueThreshold is the LTV above which conventional loans carry PMI
	PMILoanToValueThreshold = 0.80

	// PMIAnnualRate is the flat annual PMI rate applied to the loan amount
	PMIAnnualRate = 0.005

	// LoanTypeConventional is the only loan type that carries PMI
	LoanTypeConventional = "conventional"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON export snapshot format
	OutputFormatJSON = "json"

	// OutputFormatYAML is the YAML export snapshot format
	OutputFormatYAML = "yaml"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"
)

// Validation constants
const (
	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// RelativeTolerance is used when checking ledger identities on large balances
	RelativeTolerance = 1e-6
)
