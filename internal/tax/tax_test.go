package tax

import (
	"math"
	"testing"
)

func ratePtr(v float64) *float64 { return &v }

func TestComputeDefaultsWhenRatesMissing(t *testing.T) {
	b := Compute(1000, nil, nil, nil)

	if b.CGSTRate != 9 || b.SGSTRate != 9 || b.IGSTRate != 0 {
		t.Fatalf("unexpected rates: %+v", b)
	}
	if b.CGSTAmount != 90 || b.SGSTAmount != 90 || b.IGSTAmount != 0 {
		t.Fatalf("unexpected amounts: %+v", b)
	}
	if b.TotalWithTax != 1180 {
		t.Fatalf("total = %v, want 1180", b.TotalWithTax)
	}
}

// Zero CGST/SGST falls back to the default rate under legacy resolution.
// Regression seed for the upstream falsy-coalescing quirk.
func TestComputeZeroRateFallsBackToDefault(t *testing.T) {
	b := Compute(1000, ratePtr(0), ratePtr(0), ratePtr(18))

	if b.CGSTAmount != 90 {
		t.Fatalf("cgst amount = %v, want 90", b.CGSTAmount)
	}
	if b.SGSTAmount != 90 {
		t.Fatalf("sgst amount = %v, want 90", b.SGSTAmount)
	}
	if b.IGSTAmount != 180 {
		t.Fatalf("igst amount = %v, want 180", b.IGSTAmount)
	}
	if b.TotalWithTax != 1360 {
		t.Fatalf("total = %v, want 1360", b.TotalWithTax)
	}
}

func TestComputeExplicitZeroKeepsZero(t *testing.T) {
	b := ComputeWithOptions(1000, ratePtr(0), ratePtr(0), ratePtr(18), Options{ExplicitZero: true})

	if b.CGSTRate != 0 || b.SGSTRate != 0 {
		t.Fatalf("explicit zero rates not kept: %+v", b)
	}
	if b.TotalWithTax != 1180 {
		t.Fatalf("total = %v, want 1180", b.TotalWithTax)
	}
}

func TestComputeTotalIdentity(t *testing.T) {
	cases := []struct {
		grandTotal       float64
		cgst, sgst, igst *float64
	}{
		{0, nil, nil, nil},
		{500, ratePtr(2.5), ratePtr(2.5), nil},
		{1234.56, nil, ratePtr(12), ratePtr(18)},
		{99999.99, ratePtr(9), ratePtr(9), ratePtr(0)},
	}

	for _, tc := range cases {
		b := Compute(tc.grandTotal, tc.cgst, tc.sgst, tc.igst)
		sum := tc.grandTotal + b.CGSTAmount + b.SGSTAmount + b.IGSTAmount
		if math.Abs(b.TotalWithTax-sum) > 1e-9 {
			t.Fatalf("total identity broken for grandTotal=%v: got %v want %v", tc.grandTotal, b.TotalWithTax, sum)
		}
	}
}
