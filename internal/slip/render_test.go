package slip

import (
	"strings"
	"testing"

	"bps-backend/internal/config"
)

func TestRenderEmitsTwoCopies(t *testing.T) {
	doc, err := NewBuilder(config.DefaultCompanyProfile()).Build(sampleBooking())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	html, err := NewRenderer().Render(doc)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if n := strings.Count(html, "BHARAT PARCEL SERVICES PVT.LTD."); n != 2 {
		t.Fatalf("company header appears %d times, want 2 copies", n)
	}
	if !strings.Contains(html, `class="copy-divider"`) {
		t.Fatalf("missing divider between copies")
	}
	if n := strings.Count(html, "Total (Incl. Tax)"); n != 2 {
		t.Fatalf("total row appears %d times, want 2", n)
	}
}

func TestRenderUsesPreformattedValues(t *testing.T) {
	doc, err := NewBuilder(config.DefaultCompanyProfile()).Build(sampleBooking())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	html, err := NewRenderer().Render(doc)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	for _, want := range []string{"₹50.00", "₹1000.00", "12.5", "Paid", "REF-77", "02/06/2025"} {
		if !strings.Contains(html, want) {
			t.Fatalf("rendered slip missing %q", want)
		}
	}
}

func TestStyleSheetFixesPageWidth(t *testing.T) {
	css := NewRenderer().StyleSheet()
	if !strings.Contains(css, "210mm") {
		t.Fatalf("stylesheet does not pin A4 width")
	}
	if !strings.Contains(css, "overflow-y: auto") {
		t.Fatalf("stylesheet does not bound screen height")
	}
}
