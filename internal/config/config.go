// Package config defines the data structures related to configuration and
// includes functions for loading and validating a batch of calculations.
package config

import (
	"fmt"
	"strings"

	"github.com/iwvelando/finance-calculators/pkg/validation"
	"github.com/spf13/viper"
)

// Calculation types.
const (
	TypeCompound     = "compound"
	TypeAmortization = "amortization"
	TypeRate         = "rate"
	TypeMargin       = "margin"
	TypeVAT          = "vat"
	TypeDownPayment  = "downpayment"
)

// Types lists every supported calculation type.
var Types = []string{TypeCompound, TypeAmortization, TypeRate, TypeMargin, TypeVAT, TypeDownPayment}

// Configuration holds all configuration for finance-calculators.
type Configuration struct {
	Calculations []Calculation `yaml:"calculations"`
	Logging      LoggingConfig `yaml:"logging,omitempty"`
	Output       OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json, yaml
}

// Calculation is one calculator invocation. Exactly the section matching
// Type is read.
type Calculation struct {
	Name         string              `json:"name" yaml:"name"`
	Type         string              `json:"type" yaml:"type"`
	Compound     *CompoundConfig     `json:"compound,omitempty" yaml:"compound,omitempty"`
	Amortization *AmortizationConfig `json:"amortization,omitempty" yaml:"amortization,omitempty"`
	Rate         *RateConfig         `json:"rate,omitempty" yaml:"rate,omitempty"`
	Margin       *MarginConfig       `json:"margin,omitempty" yaml:"margin,omitempty"`
	VAT          *VATConfig          `json:"vat,omitempty" yaml:"vat,omitempty"`
	DownPayment  *DownPaymentConfig  `json:"downPayment,omitempty" yaml:"downPayment,omitempty"`
}

// CompoundConfig configures a compound interest projection. Rates are percentages.
type CompoundConfig struct {
	Principal              float64 `json:"principal" yaml:"principal"`
	MonthlyContribution    float64 `json:"monthlyContribution" yaml:"monthlyContribution"`
	ContributionGrowthRate float64 `json:"contributionGrowthRate" yaml:"contributionGrowthRate"`
	AnnualRate             float64 `json:"annualRate" yaml:"annualRate"`
	Frequency              string  `json:"frequency" yaml:"frequency"`
	TermYears              int     `json:"termYears" yaml:"termYears"`
	InflationRate          float64 `json:"inflationRate" yaml:"inflationRate"`
}

// AmortizationConfig configures a level-payment loan.
type AmortizationConfig struct {
	Principal        float64 `json:"principal" yaml:"principal"`
	AnnualRate       float64 `json:"annualRate" yaml:"annualRate"`
	TermYears        int     `json:"termYears" yaml:"termYears"`
	PaymentFrequency string  `json:"paymentFrequency" yaml:"paymentFrequency"`
}

// RateConfig configures a rate solve. A positive MonthlyContribution selects
// the contribution-adjusted solver.
type RateConfig struct {
	Principal           float64 `json:"principal" yaml:"principal"`
	FinalAmount         float64 `json:"finalAmount" yaml:"finalAmount"`
	TermYears           int     `json:"termYears" yaml:"termYears"`
	Frequency           string  `json:"frequency" yaml:"frequency"`
	MonthlyContribution float64 `json:"monthlyContribution" yaml:"monthlyContribution"`
}

// MarginConfig configures a margin calculation. When TargetMargin is set the
// price is derived from it, otherwise margin and markup are derived from Price.
type MarginConfig struct {
	Cost         float64  `json:"cost" yaml:"cost"`
	Price        float64  `json:"price" yaml:"price"`
	TargetMargin *float64 `json:"targetMargin,omitempty" yaml:"targetMargin,omitempty"`
}

// VATConfig configures a VAT invoice.
type VATConfig struct {
	Items []VATItemConfig `json:"items" yaml:"items"`
}

// VATItemConfig is one invoice line. Mode is "add" (price is net) or
// "remove" (price is gross).
type VATItemConfig struct {
	Description string  `json:"description" yaml:"description"`
	Price       float64 `json:"price" yaml:"price"`
	Quantity    float64 `json:"quantity" yaml:"quantity"`
	Rate        float64 `json:"rate" yaml:"rate"`
	Mode        string  `json:"mode" yaml:"mode"`
}

// DownPaymentConfig configures a home purchase.
type DownPaymentConfig struct {
	HomePrice           float64 `json:"homePrice" yaml:"homePrice"`
	DownPayment         float64 `json:"downPayment" yaml:"downPayment"`
	DownPaymentPercent  float64 `json:"downPaymentPercent" yaml:"downPaymentPercent"`
	AnnualRate          float64 `json:"annualRate" yaml:"annualRate"`
	TermYears           int     `json:"termYears" yaml:"termYears"`
	LoanType            string  `json:"loanType" yaml:"loanType"`
	ClosingCostsPercent float64 `json:"closingCostsPercent" yaml:"closingCostsPercent"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	for i := range configuration.Calculations {
		configuration.Calculations[i].Type = normalizeType(configuration.Calculations[i].Type)
	}

	return &configuration, nil
}

func normalizeType(calculationType string) string {
	normalized := strings.ToLower(strings.TrimSpace(calculationType))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(normalized)
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string
	if len(c.Calculations) == 0 {
		warnings = append(warnings, "Configuration contains no calculations")
	}

	seen := make(map[string]bool)
	for i, calc := range c.Calculations {
		name := calc.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i+1)
			warnings = append(warnings, fmt.Sprintf("Calculation %s has no name", name))
		} else if seen[name] {
			warnings = append(warnings, fmt.Sprintf("Calculation name '%s' is used more than once", name))
		}
		seen[name] = true

		switch {
		case calc.Compound != nil && calc.Type == TypeCompound:
			if w := validation.ValidateFrequency(name, calc.Compound.Frequency); w != "" {
				warnings = append(warnings, w)
			}
		case calc.Amortization != nil && calc.Type == TypeAmortization:
			if w := validation.ValidateFrequency(name, calc.Amortization.PaymentFrequency); w != "" {
				warnings = append(warnings, w)
			}
		case calc.Rate != nil && calc.Type == TypeRate:
			if w := validation.ValidateFrequency(name, calc.Rate.Frequency); w != "" {
				warnings = append(warnings, w)
			}
			if calc.Rate.MonthlyContribution > 0 && calc.Rate.Frequency != "" {
				warnings = append(warnings, fmt.Sprintf(
					"Calculation '%s' has contributions - the rate is solved with monthly compounding and frequency is ignored", name))
			}
		}
	}
	return warnings
}
