package main

import (
	"github.com/iwvelando/finance-calculators/internal/config"
	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/spf13/cobra"
)

func newCompoundCmd(opts *rootOptions) *cobra.Command {
	c := &config.CompoundConfig{}
	cmd := &cobra.Command{
		Use:   "compound",
		Short: "Project a balance under compound interest with monthly contributions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeSingle(cmd, opts, config.Calculation{Name: "compound", Type: config.TypeCompound, Compound: c})
		},
	}
	flags := cmd.Flags()
	flags.Float64Var(&c.Principal, "principal", 0, "starting balance")
	flags.Float64Var(&c.MonthlyContribution, "monthly-contribution", 0, "amount added every month")
	flags.Float64Var(&c.ContributionGrowthRate, "contribution-growth", 0, "yearly contribution growth in percent")
	flags.Float64Var(&c.AnnualRate, "rate", 0, "nominal annual interest rate in percent")
	flags.StringVar(&c.Frequency, "frequency", constants.FrequencyMonthly, "compounding frequency: annually, semiannually, quarterly, monthly, daily")
	flags.IntVar(&c.TermYears, "years", 0, "term in years")
	flags.Float64Var(&c.InflationRate, "inflation", 0, "yearly inflation in percent")
	return cmd
}

func newAmortizeCmd(opts *rootOptions) *cobra.Command {
	c := &config.AmortizationConfig{}
	cmd := &cobra.Command{
		Use:   "amortize",
		Short: "Compute the level payment and total interest of a loan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeSingle(cmd, opts, config.Calculation{Name: "amortize", Type: config.TypeAmortization, Amortization: c})
		},
	}
	flags := cmd.Flags()
	flags.Float64Var(&c.Principal, "principal", 0, "loan amount")
	flags.Float64Var(&c.AnnualRate, "rate", 0, "nominal annual interest rate in percent")
	flags.IntVar(&c.TermYears, "years", 0, "term in years")
	flags.StringVar(&c.PaymentFrequency, "frequency", constants.FrequencyMonthly, "payment frequency")
	return cmd
}

func newRateCmd(opts *rootOptions) *cobra.Command {
	c := &config.RateConfig{}
	cmd := &cobra.Command{
		Use:   "rate",
		Short: "Solve for the annual rate that grows a principal into a final amount",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeSingle(cmd, opts, config.Calculation{Name: "rate", Type: config.TypeRate, Rate: c})
		},
	}
	flags := cmd.Flags()
	flags.Float64Var(&c.Principal, "principal", 0, "starting balance")
	flags.Float64Var(&c.FinalAmount, "final", 0, "target balance")
	flags.IntVar(&c.TermYears, "years", 0, "term in years")
	flags.StringVar(&c.Frequency, "frequency", "", "compounding frequency (monthly when empty)")
	flags.Float64Var(&c.MonthlyContribution, "monthly-contribution", 0, "amount added every month")
	return cmd
}

func newMarginCmd(opts *rootOptions) *cobra.Command {
	c := &config.MarginConfig{}
	var targetMargin float64
	cmd := &cobra.Command{
		Use:   "margin",
		Short: "Compute gross margin and markup, or the price for a target margin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("target-margin") {
				c.TargetMargin = &targetMargin
			}
			return executeSingle(cmd, opts, config.Calculation{Name: "margin", Type: config.TypeMargin, Margin: c})
		},
	}
	flags := cmd.Flags()
	flags.Float64Var(&c.Cost, "cost", 0, "unit cost")
	flags.Float64Var(&c.Price, "price", 0, "selling price")
	flags.Float64Var(&targetMargin, "target-margin", 0, "desired margin in percent; the price is derived from it")
	return cmd
}

func newVATCmd(opts *rootOptions) *cobra.Command {
	item := config.VATItemConfig{}
	cmd := &cobra.Command{
		Use:   "vat",
		Short: "Add VAT to a net price or extract it from a gross price",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vat := &config.VATConfig{Items: []config.VATItemConfig{item}}
			return executeSingle(cmd, opts, config.Calculation{Name: "vat", Type: config.TypeVAT, VAT: vat})
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&item.Description, "description", "", "line item description")
	flags.Float64Var(&item.Price, "price", 0, "unit price, net for add and gross for remove")
	flags.Float64Var(&item.Quantity, "quantity", 1, "number of units")
	flags.Float64Var(&item.Rate, "rate", 0, "VAT rate in percent")
	flags.StringVar(&item.Mode, "mode", "add", "add or remove")
	return cmd
}

func newDownPaymentCmd(opts *rootOptions) *cobra.Command {
	c := &config.DownPaymentConfig{}
	cmd := &cobra.Command{
		Use:   "downpayment",
		Short: "Size a mortgage after a down payment, including PMI and cash to close",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeSingle(cmd, opts, config.Calculation{Name: "downpayment", Type: config.TypeDownPayment, DownPayment: c})
		},
	}
	flags := cmd.Flags()
	flags.Float64Var(&c.HomePrice, "home-price", 0, "purchase price")
	flags.Float64Var(&c.DownPayment, "down-payment", 0, "down payment amount; overrides --down-payment-percent")
	flags.Float64Var(&c.DownPaymentPercent, "down-payment-percent", 20, "down payment as a percent of the price")
	flags.Float64Var(&c.AnnualRate, "rate", 0, "nominal annual interest rate in percent")
	flags.IntVar(&c.TermYears, "years", 30, "term in years")
	flags.StringVar(&c.LoanType, "loan-type", constants.LoanTypeConventional, "loan type; only conventional loans carry PMI")
	flags.Float64Var(&c.ClosingCostsPercent, "closing-costs-percent", 0, "closing costs as a percent of the price")
	return cmd
}
