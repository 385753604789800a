package entities

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestInvoiceItem_Recalculate(t *testing.T) {
	it := InvoiceItem{Description: "Split 3000 frigorías", Quantity: 2, UnitPrice: 450.0, TaxRate: 21}
	it.Recalculate()

	want := 2 * 450.0 * 1.21
	if !almostEqual(it.Total, want) {
		t.Fatalf("expected line total %v, got %v", want, it.Total)
	}
	if !almostEqual(it.TaxableBase(), 900.0) {
		t.Fatalf("expected taxable base 900, got %v", it.TaxableBase())
	}
	if !almostEqual(it.TaxAmount(), 189.0) {
		t.Fatalf("expected tax amount 189, got %v", it.TaxAmount())
	}
}

func TestInvoice_RecalculateTotals(t *testing.T) {
	t.Run("empty item list", func(t *testing.T) {
		var f Invoice
		f.RecalculateTotals()

		if f.Subtotal != 0.0 || f.TaxTotal != 0.0 || f.Total != 0.0 {
			t.Fatalf("expected all totals 0.0, got %v/%v/%v", f.Subtotal, f.TaxTotal, f.Total)
		}
	})

	t.Run("mixed tax rates", func(t *testing.T) {
		f := Invoice{Items: []InvoiceItem{
			{Quantity: 1, UnitPrice: 100.0, TaxRate: 21},
			{Quantity: 3, UnitPrice: 25.5, TaxRate: 10},
			{Quantity: 2, UnitPrice: 12.0, TaxRate: 0},
		}}
		f.RecalculateTotals()

		wantSubtotal := 100.0 + 3*25.5 + 2*12.0
		wantTax := 100.0*0.21 + 3*25.5*0.10
		if !almostEqual(f.Subtotal, wantSubtotal) {
			t.Fatalf("expected subtotal %v, got %v", wantSubtotal, f.Subtotal)
		}
		if !almostEqual(f.TaxTotal, wantTax) {
			t.Fatalf("expected tax total %v, got %v", wantTax, f.TaxTotal)
		}
		if !almostEqual(f.Total, f.Subtotal+f.TaxTotal) {
			t.Fatalf("total %v inconsistent with subtotal+tax %v", f.Total, f.Subtotal+f.TaxTotal)
		}
		for i, it := range f.Items {
			if !almostEqual(it.Total, it.TaxableBase()+it.TaxAmount()) {
				t.Fatalf("item %d total not derived: %+v", i, it)
			}
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		f := Invoice{Items: []InvoiceItem{{Quantity: 4, UnitPrice: 19.99, TaxRate: 21}}}
		f.RecalculateTotals()
		first := f.Total
		f.RecalculateTotals()
		if !almostEqual(f.Total, first) {
			t.Fatalf("totals changed on second pass: %v vs %v", first, f.Total)
		}
	})
}

func TestInvoice_AddRemoveItem(t *testing.T) {
	var f Invoice
	f.AddItem(InvoiceItem{Description: "mano de obra", Quantity: 1, UnitPrice: 60.0, TaxRate: 21})
	f.AddItem(InvoiceItem{Description: "soporte pared", Quantity: 2, UnitPrice: 15.0, TaxRate: 21})

	if len(f.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(f.Items))
	}
	if !almostEqual(f.Subtotal, 90.0) {
		t.Fatalf("expected subtotal 90, got %v", f.Subtotal)
	}

	f.RemoveItem(0)
	if len(f.Items) != 1 || f.Items[0].Description != "soporte pared" {
		t.Fatalf("unexpected items after removal: %+v", f.Items)
	}
	if !almostEqual(f.Subtotal, 30.0) {
		t.Fatalf("expected subtotal 30 after removal, got %v", f.Subtotal)
	}

	// Out-of-range removals are ignored.
	f.RemoveItem(7)
	f.RemoveItem(-1)
	if len(f.Items) != 1 {
		t.Fatalf("out-of-range removal must not mutate items")
	}
}

func TestInvoiceEnums(t *testing.T) {
	if len(InvoiceStatuses()) != 3 {
		t.Fatalf("expected 3 invoice statuses")
	}
	if !PaymentMethodMobileTransfer.Valid() {
		t.Fatalf("BIZUM should be valid")
	}
	if InvoiceStatus("COBRADA").Valid() {
		t.Fatalf("unknown status should not be valid")
	}
}
