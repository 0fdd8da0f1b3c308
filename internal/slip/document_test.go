package slip

import (
	"reflect"
	"strings"
	"testing"

	"bps-backend/internal/config"
	"bps-backend/internal/domain"
)

func ratePtr(v float64) *float64 { return &v }

func sampleBooking() *domain.Booking {
	return &domain.Booking{
		ID:         "BK-1001",
		GrandTotal: 1000,
		IGST:       ratePtr(18),
		StartStation: &domain.Station{
			StationName: "DELHI",
			GST:         "07AAECB6506F1Z1",
		},
		FromCity:     "Delhi",
		ToCity:       "Mumbai",
		SenderName:   "Ram Traders",
		SenderGST:    "07AAAAA0000A1Z5",
		ReceiverName: "Shyam & Sons",
		ReceiverGST:  "27BBBBB0000B1Z5",
		BookingDate:  "2025-06-02",
		Items: []domain.LineItem{
			{RefNo: "REF-77", Insurance: 50, VPPAmount: 0, ToPay: "Paid", Weight: 12.5, Amount: 1000},
		},
	}
}

func TestBuildNilBookingIsGuarded(t *testing.T) {
	bld := NewBuilder(config.DefaultCompanyProfile())
	if _, err := bld.Build(nil); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for nil booking, got %v", err)
	}
}

func TestBuildHeaderAndMeta(t *testing.T) {
	bld := NewBuilder(config.DefaultCompanyProfile())
	doc, err := bld.Build(sampleBooking())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if doc.Header.CompanyName != "BHARAT PARCEL SERVICES PVT.LTD." {
		t.Fatalf("company name = %q", doc.Header.CompanyName)
	}
	if doc.Header.Jurisdiction != "SUBJECT TO DELHI JURISDICTION" {
		t.Fatalf("jurisdiction = %q", doc.Header.Jurisdiction)
	}
	if doc.Header.PAN != "AAECB6506F" {
		t.Fatalf("pan = %q", doc.Header.PAN)
	}
	if len(doc.Offices) != 2 {
		t.Fatalf("offices = %d, want the two fixed addresses", len(doc.Offices))
	}
	if doc.Meta[0].Left.Value != "REF-77" {
		t.Fatalf("ref no = %q, want first item's", doc.Meta[0].Left.Value)
	}
	if doc.Meta[0].Right.Value != "02/06/2025" {
		t.Fatalf("date = %q", doc.Meta[0].Right.Value)
	}
}

func TestBuildTaxRowsOnlyForPositiveRates(t *testing.T) {
	bld := NewBuilder(config.DefaultCompanyProfile())
	doc, err := bld.Build(sampleBooking())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	labels := make([]string, 0, len(doc.Totals))
	for _, row := range doc.Totals {
		labels = append(labels, row.Label)
	}
	want := []string{"Sub Total", "CGST (9%)", "SGST (9%)", "IGST (18%)", "Total (Incl. Tax)"}
	if !reflect.DeepEqual(labels, want) {
		t.Fatalf("total rows = %v, want %v", labels, want)
	}
	if doc.Totals[len(doc.Totals)-1].Amount != "₹1360.00" {
		t.Fatalf("grand total = %q, want ₹1360.00", doc.Totals[len(doc.Totals)-1].Amount)
	}
}

func TestBuildExplicitZeroSuppressesTaxRows(t *testing.T) {
	profile := config.DefaultCompanyProfile()
	profile.ZeroRateMode = config.ZeroRateExplicit

	b := sampleBooking()
	b.CGST = ratePtr(0)
	b.SGST = ratePtr(0)
	b.IGST = nil

	doc, err := NewBuilder(profile).Build(b)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for _, row := range doc.Totals {
		if strings.HasPrefix(row.Label, "CGST") || strings.HasPrefix(row.Label, "SGST") {
			t.Fatalf("tax row %q should be suppressed for explicit zero rate", row.Label)
		}
	}
}

func TestBuildEmptyItemsStillTotals(t *testing.T) {
	b := sampleBooking()
	b.Items = nil
	b.GrandTotal = 500
	b.CGST, b.SGST, b.IGST = nil, nil, nil

	doc, err := NewBuilder(config.DefaultCompanyProfile()).Build(b)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(doc.Items) != 0 {
		t.Fatalf("item rows = %d, want 0", len(doc.Items))
	}
	if doc.Totals[0].Label != "Sub Total" || doc.Totals[0].Amount != "₹500.00" {
		t.Fatalf("subtotal row = %+v", doc.Totals[0])
	}
	if doc.Totals[len(doc.Totals)-1].Label != "Total (Incl. Tax)" {
		t.Fatalf("missing total row: %+v", doc.Totals)
	}
}

func TestBuildMissingNestedFieldsDegrade(t *testing.T) {
	b := sampleBooking()
	b.StartStation = nil
	b.Items = nil

	doc, err := NewBuilder(config.DefaultCompanyProfile()).Build(b)
	if err != nil {
		t.Fatalf("Build should not fail on missing nested fields: %v", err)
	}
	if doc.Header.GSTIN != "" {
		t.Fatalf("gstin = %q, want empty", doc.Header.GSTIN)
	}
	if doc.Meta[0].Left.Value != "" {
		t.Fatalf("ref no = %q, want empty with no items", doc.Meta[0].Left.Value)
	}
}

func TestBuildDeterministic(t *testing.T) {
	bld := NewBuilder(config.DefaultCompanyProfile())
	first, err := bld.Build(sampleBooking())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	second, err := bld.Build(sampleBooking())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical bookings produced different documents")
	}
}

func TestFileName(t *testing.T) {
	doc := Document{BookingID: "BK-1001"}
	if got := doc.FileName(); got != "Slip_BK-1001.pdf" {
		t.Fatalf("file name = %q", got)
	}
	doc.BookingID = ""
	if got := doc.FileName(); got != "Slip_BPS.pdf" {
		t.Fatalf("fallback file name = %q", got)
	}
}
