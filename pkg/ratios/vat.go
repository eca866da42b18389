package ratios

import (
	"github.com/iwvelando/finance-calculators/pkg/mathutil"
)

// VATMode selects whether a line item price is net or gross.
type VATMode string

const (
	// VATAdd treats the price as net and adds VAT on top.
	VATAdd VATMode = "add"
	// VATRemove treats the price as gross and extracts the VAT it contains.
	VATRemove VATMode = "remove"
)

// VatLineItem is a single price subject to VAT.
type VatLineItem struct {
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Price       float64 `json:"price" yaml:"price"`
	Quantity    float64 `json:"quantity,omitempty" yaml:"quantity,omitempty"`
	VatRatePct  float64 `json:"vatRatePct" yaml:"vatRatePct"`
	Mode        VATMode `json:"mode" yaml:"mode"`
}

// VatResult holds the split of a gross amount into net and VAT.
// GrossAmount always equals NetAmount + VatAmount.
type VatResult struct {
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	NetAmount   float64 `json:"netAmount" yaml:"netAmount"`
	VatAmount   float64 `json:"vatAmount" yaml:"vatAmount"`
	GrossAmount float64 `json:"grossAmount" yaml:"grossAmount"`
}

// VatSummary totals several line items.
type VatSummary struct {
	Lines      []VatResult `json:"lines" yaml:"lines"`
	TotalNet   float64     `json:"totalNet" yaml:"totalNet"`
	TotalVat   float64     `json:"totalVat" yaml:"totalVat"`
	TotalGross float64     `json:"totalGross" yaml:"totalGross"`
}

// AddVAT treats net as a pre-tax price.
func AddVAT(net, ratePct float64) VatResult {
	vat := mathutil.ApplyPercentage(net, ratePct)
	return VatResult{NetAmount: net, VatAmount: vat, GrossAmount: net + vat}
}

// RemoveVAT extracts the VAT contained in a gross price.
func RemoveVAT(gross, ratePct float64) VatResult {
	net := mathutil.SafeDivide(gross, 1+mathutil.PercentToDecimal(ratePct), gross)
	vat := gross - net
	return VatResult{NetAmount: gross - vat, VatAmount: vat, GrossAmount: gross}
}

// ApplyVAT computes a single line item. Quantity defaults to 1. Unknown modes
// are treated as VATAdd.
func ApplyVAT(item VatLineItem) VatResult {
	quantity := item.Quantity
	if quantity == 0 {
		quantity = 1
	}
	amount := item.Price * quantity

	var result VatResult
	if item.Mode == VATRemove {
		result = RemoveVAT(amount, item.VatRatePct)
	} else {
		result = AddVAT(amount, item.VatRatePct)
	}
	result.Description = item.Description
	return result
}

// SummarizeVAT applies each line item and totals them.
func SummarizeVAT(items []VatLineItem) VatSummary {
	summary := VatSummary{Lines: make([]VatResult, 0, len(items))}
	for _, item := range items {
		line := ApplyVAT(item)
		summary.Lines = append(summary.Lines, line)
		summary.TotalNet += line.NetAmount
		summary.TotalVat += line.VatAmount
		summary.TotalGross += line.GrossAmount
	}
	return summary
}
