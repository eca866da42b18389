// Package ratios provides closed-form percentage conversions used by the
// margin, VAT and mortgage calculators. Zero denominators yield 0 rather than
// NaN or Inf.
package ratios

import (
	"github.com/iwvelando/finance-calculators/pkg/mathutil"
)

// MarginResult describes the relationship between cost and selling price.
type MarginResult struct {
	Cost        float64 `json:"cost" yaml:"cost"`
	Price       float64 `json:"price" yaml:"price"`
	GrossProfit float64 `json:"grossProfit" yaml:"grossProfit"`
	MarginPct   float64 `json:"marginPct" yaml:"marginPct"`
	MarkupPct   float64 `json:"markupPct" yaml:"markupPct"`
}

// MarginFromCostPrice derives margin (profit over price) and markup (profit
// over cost) from a cost and selling price.
func MarginFromCostPrice(cost, price float64) MarginResult {
	profit := price - cost
	return MarginResult{
		Cost:        cost,
		Price:       price,
		GrossProfit: profit,
		MarginPct:   mathutil.DecimalToPercent(mathutil.SafeDivide(profit, price, 0)),
		MarkupPct:   mathutil.DecimalToPercent(mathutil.SafeDivide(profit, cost, 0)),
	}
}

// PriceFromMargin returns the selling price that yields targetMarginPct on
// cost. A margin of 100% or more has no finite price and yields a zero price.
func PriceFromMargin(cost, targetMarginPct float64) MarginResult {
	margin := mathutil.PercentToDecimal(targetMarginPct)
	if margin >= 1 {
		return MarginResult{Cost: cost, MarginPct: targetMarginPct}
	}
	price := mathutil.SafeDivide(cost, 1-margin, 0)
	result := MarginFromCostPrice(cost, price)
	result.MarginPct = targetMarginPct
	return result
}

// MarkupFromMargin converts a margin percentage to the equivalent markup
// percentage: markup = margin / (1 - margin).
func MarkupFromMargin(marginPct float64) float64 {
	margin := mathutil.PercentToDecimal(marginPct)
	return mathutil.DecimalToPercent(mathutil.SafeDivide(margin, 1-margin, 0))
}

// MarginFromMarkup converts a markup percentage to the equivalent margin
// percentage: margin = markup / (1 + markup).
func MarginFromMarkup(markupPct float64) float64 {
	markup := mathutil.PercentToDecimal(markupPct)
	return mathutil.DecimalToPercent(mathutil.SafeDivide(markup, 1+markup, 0))
}
