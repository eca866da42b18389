// Package output provides utilities for formatting and displaying calculation results.
package output

import (
	"fmt"
	"io"

	"github.com/iwvelando/finance-calculators/internal/engine"
	"github.com/iwvelando/finance-calculators/pkg/format"
	"github.com/iwvelando/finance-calculators/pkg/loans"
	"github.com/iwvelando/finance-calculators/pkg/mathutil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable report.
func PrettyFormat(w io.Writer, results []engine.Result) {
	p := message.NewPrinter(language.English)
	for i, result := range results {
		fmt.Fprintf(w, "--- Results for %s calculation %s ---\n", result.Input.Type, result.Name())
		for _, row := range summaryRows(result) {
			fmt.Fprintf(w, "%-28s %s\n", row.label+":", row.display)
		}

		if series := yearlyRows(result); len(series.rows) > 0 {
			fmt.Fprintln(w)
			_, _ = p.Fprintf(w, "%s\n", series.header)
			for _, row := range series.rows {
				_, _ = p.Fprintf(w, "%4d", row.year)
				for _, value := range row.values {
					if !mathutil.IsFinite(value) {
						fmt.Fprintf(w, " | %s", format.Currency(value))
						continue
					}
					_, _ = p.Fprintf(w, " | $%.2f", value)
				}
				fmt.Fprintln(w)
			}
		}
		if len(results) > 1 && i < len(results)-1 {
			fmt.Fprintln(w)
		}
	}
}

type summaryRow struct {
	key     string
	label   string
	value   float64
	display string
}

func money(key, label string, value float64) summaryRow {
	return summaryRow{key: key, label: label, value: value, display: format.Currency(value)}
}

func percent(key, label string, value float64) summaryRow {
	return summaryRow{key: key, label: label, value: value, display: format.Percent(value)}
}

func count(key, label string, value int) summaryRow {
	return summaryRow{key: key, label: label, value: float64(value), display: fmt.Sprintf("%d", value)}
}

func flag(key, label string, value bool) summaryRow {
	row := summaryRow{key: key, label: label, display: "no"}
	if value {
		row.value = 1
		row.display = "yes"
	}
	return row
}

func summaryRows(result engine.Result) []summaryRow {
	switch {
	case result.Projection != nil:
		r := result.Projection
		return []summaryRow{
			money("finalBalance", "Final balance", r.FinalBalance),
			money("totalContributions", "Total contributions", r.TotalContributions),
			money("totalInterest", "Total interest", r.TotalInterest),
			money("realFinalBalance", "Inflation-adjusted balance", r.RealFinalBalance),
		}
	case result.Amortization != nil:
		r := result.Amortization.Summary
		return []summaryRow{
			money("periodicPayment", "Payment", r.PeriodicPayment),
			count("numPayments", "Number of payments", r.NumPayments),
			money("totalInterest", "Total interest", r.TotalInterest),
			money("totalPaid", "Total paid", r.TotalPaid),
		}
	case result.Rate != nil:
		r := result.Rate
		return []summaryRow{
			percent("annualRatePct", "Annual rate", r.AnnualRatePct),
			percent("effectiveAnnualRatePct", "Effective annual rate", r.EffectiveAnnualRatePct),
			count("iterations", "Iterations", r.Iterations),
			flag("converged", "Converged", r.Converged),
		}
	case result.Margin != nil:
		r := result.Margin
		return []summaryRow{
			money("cost", "Cost", r.Cost),
			money("price", "Price", r.Price),
			money("grossProfit", "Gross profit", r.GrossProfit),
			percent("marginPct", "Margin", r.MarginPct),
			percent("markupPct", "Markup", r.MarkupPct),
		}
	case result.VAT != nil:
		r := result.VAT
		rows := make([]summaryRow, 0, len(r.Lines)+3)
		for i, line := range r.Lines {
			label := line.Description
			if label == "" {
				label = fmt.Sprintf("Line %d", i+1)
			}
			display := fmt.Sprintf("%s net + %s VAT = %s",
				format.Currency(line.NetAmount), format.Currency(line.VatAmount), format.Currency(line.GrossAmount))
			rows = append(rows, summaryRow{
				key:     fmt.Sprintf("line%dGross", i+1),
				label:   label,
				value:   line.GrossAmount,
				display: display,
			})
		}
		return append(rows,
			money("totalNet", "Total net", r.TotalNet),
			money("totalVat", "Total VAT", r.TotalVat),
			money("totalGross", "Total gross", r.TotalGross),
		)
	case result.DownPayment != nil:
		r := result.DownPayment
		return []summaryRow{
			money("downPayment", "Down payment", r.DownPayment),
			money("loanAmount", "Loan amount", r.LoanAmount),
			percent("loanToValuePct", "Loan-to-value", r.LoanToValuePct),
			flag("pmiRequired", "PMI required", r.PMIRequired),
			money("monthlyPmi", "Monthly PMI", r.MonthlyPMI),
			money("monthlyPrincipalInterest", "Monthly principal+interest", r.MonthlyPrincipalInterest),
			money("totalMonthlyPayment", "Total monthly payment", r.TotalMonthlyPayment),
			money("totalInterest", "Total interest", r.TotalInterest),
			money("closingCosts", "Closing costs", r.ClosingCosts),
			money("cashToClose", "Cash to close", r.CashToClose),
		}
	}
	return nil
}

type yearlyRow struct {
	year   int
	values []float64
}

type yearlySeries struct {
	header  string
	columns []string
	rows    []yearlyRow
}

func yearlyRows(result engine.Result) yearlySeries {
	var series yearlySeries
	switch {
	case result.Projection != nil:
		series.header = "Year | Balance | Contributions | Interest | Real balance"
		series.columns = []string{"balance", "cumulativeContributions", "cumulativeInterest", "realBalance"}
		for _, point := range result.Projection.Yearly {
			series.rows = append(series.rows, yearlyRow{point.Year, []float64{
				point.Balance, point.CumulativeContributions, point.CumulativeInterest, point.RealBalance,
			}})
		}
	case result.Amortization != nil || result.DownPayment != nil:
		series.header = "Year | Principal | Interest | Remaining"
		series.columns = []string{"principal", "interest", "remainingPrincipal"}
		var years []loans.YearSummary
		if result.Amortization != nil {
			years = result.Amortization.Yearly
		} else {
			years = result.DownPayment.Yearly
		}
		for _, year := range years {
			series.rows = append(series.rows, yearlyRow{year.Year, []float64{
				year.Principal, year.Interest, year.RemainingPrincipal,
			}})
		}
	}
	return series
}
