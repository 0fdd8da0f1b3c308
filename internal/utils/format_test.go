package utils

import (
	"math"
	"testing"
)

func TestFormatRupee(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "₹0.00"},
		{math.NaN(), "₹0.00"},
		{1234.5, "₹1234.50"},
		{1234.555, "₹1234.56"},
		{0.125, "₹0.13"}, // half away from zero, not banker's
		{-12.5, "₹-12.50"},
	}
	for _, tc := range cases {
		if got := FormatRupee(tc.in); got != tc.want {
			t.Fatalf("FormatRupee(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatSlipDate(t *testing.T) {
	if got := FormatSlipDate(""); got != "N/A" {
		t.Fatalf("empty date = %q, want N/A", got)
	}
	if got := FormatSlipDate("not-a-date"); got != "N/A" {
		t.Fatalf("unparsable date = %q, want N/A", got)
	}
	if got := FormatSlipDate("2025-06-02"); got != "02/06/2025" {
		t.Fatalf("iso date = %q, want 02/06/2025", got)
	}
	if got := FormatSlipDate("2025-06-02T10:30:00Z"); got != "02/06/2025" {
		t.Fatalf("rfc3339 date = %q, want 02/06/2025", got)
	}
}
