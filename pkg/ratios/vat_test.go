package ratios

import (
	"math"
	"testing"
)

func TestAddVAT(t *testing.T) {
	result := AddVAT(100, 20)
	if math.Abs(result.VatAmount-20) > 1e-9 {
		t.Errorf("VatAmount = %v, expected 20", result.VatAmount)
	}
	if math.Abs(result.GrossAmount-120) > 1e-9 {
		t.Errorf("GrossAmount = %v, expected 120", result.GrossAmount)
	}
	if result.NetAmount != 100 {
		t.Errorf("NetAmount = %v, expected 100", result.NetAmount)
	}
}

func TestRemoveVAT(t *testing.T) {
	result := RemoveVAT(120, 20)
	if math.Abs(result.VatAmount-20) > 1e-9 {
		t.Errorf("VatAmount = %v, expected 20", result.VatAmount)
	}
	if math.Abs(result.NetAmount-100) > 1e-9 {
		t.Errorf("NetAmount = %v, expected 100", result.NetAmount)
	}
	if result.GrossAmount != 120 {
		t.Errorf("GrossAmount = %v, expected 120", result.GrossAmount)
	}
}

func TestVATRoundTrip(t *testing.T) {
	for _, rate := range []float64{0, 5, 7.7, 19, 20, 25} {
		for _, net := range []float64{0.99, 100, 1234.56} {
			added := AddVAT(net, rate)
			removed := RemoveVAT(added.GrossAmount, rate)
			if math.Abs(removed.NetAmount-net) > 1e-9 {
				t.Errorf("rate %v: RemoveVAT(AddVAT(%v)).NetAmount = %v", rate, net, removed.NetAmount)
			}
			if math.Abs(removed.VatAmount-added.VatAmount) > 1e-9 {
				t.Errorf("rate %v: VAT mismatch %v vs %v", rate, removed.VatAmount, added.VatAmount)
			}
		}
	}
}

func TestGrossEqualsNetPlusVAT(t *testing.T) {
	items := []VatLineItem{
		{Price: 100, VatRatePct: 20, Mode: VATAdd},
		{Price: 120, VatRatePct: 20, Mode: VATRemove},
		{Price: 19.99, Quantity: 3, VatRatePct: 7, Mode: VATRemove},
		{Price: 0, VatRatePct: 20, Mode: VATAdd},
	}
	for _, item := range items {
		result := ApplyVAT(item)
		if math.Abs(result.GrossAmount-(result.NetAmount+result.VatAmount)) > 1e-9 {
			t.Errorf("%+v: gross %v != net %v + vat %v", item, result.GrossAmount, result.NetAmount, result.VatAmount)
		}
	}
}

func TestApplyVATQuantityAndMode(t *testing.T) {
	result := ApplyVAT(VatLineItem{Description: "widgets", Price: 10, Quantity: 3, VatRatePct: 10})
	if math.Abs(result.GrossAmount-33) > 1e-9 {
		t.Errorf("GrossAmount = %v, expected 33", result.GrossAmount)
	}
	if result.Description != "widgets" {
		t.Errorf("Description = %q, expected widgets", result.Description)
	}
}

func TestSummarizeVAT(t *testing.T) {
	summary := SummarizeVAT([]VatLineItem{
		{Price: 100, VatRatePct: 20, Mode: VATAdd},
		{Price: 110, VatRatePct: 10, Mode: VATRemove},
	})

	if len(summary.Lines) != 2 {
		t.Fatalf("len(Lines) = %d, expected 2", len(summary.Lines))
	}
	if math.Abs(summary.TotalNet-200) > 1e-9 {
		t.Errorf("TotalNet = %v, expected 200", summary.TotalNet)
	}
	if math.Abs(summary.TotalVat-30) > 1e-9 {
		t.Errorf("TotalVat = %v, expected 30", summary.TotalVat)
	}
	if math.Abs(summary.TotalGross-230) > 1e-9 {
		t.Errorf("TotalGross = %v, expected 230", summary.TotalGross)
	}

	empty := SummarizeVAT(nil)
	if empty.TotalGross != 0 || len(empty.Lines) != 0 {
		t.Errorf("SummarizeVAT(nil) = %+v, expected zero totals", empty)
	}
}
