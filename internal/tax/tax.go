// Package tax computes the GST breakdown printed on a consignment slip.
package tax

// Default rates applied when a booking carries no rate of its own.
const (
	DefaultCGSTRate = 9.0
	DefaultSGSTRate = 9.0
	DefaultIGSTRate = 0.0
)

// Breakdown is the derived tax block for one slip. It is never persisted.
type Breakdown struct {
	CGSTRate float64 `json:"cgstRate"`
	SGSTRate float64 `json:"sgstRate"`
	IGSTRate float64 `json:"igstRate"`

	CGSTAmount float64 `json:"cgstAmount"`
	SGSTAmount float64 `json:"sgstAmount"`
	IGSTAmount float64 `json:"igstAmount"`

	TotalWithTax float64 `json:"totalWithTax"`
}

// Options tunes rate resolution.
//
// ExplicitZero keeps a provided zero CGST/SGST rate instead of substituting
// the default. The legacy dashboard cannot tell "rate left blank" apart from
// "rate entered as 0" and silently defaults both; that stays the default here
// so existing slips do not change.
type Options struct {
	ExplicitZero bool
}

// Compute resolves the three rates against a booking's optional inputs and
// returns the full breakdown using legacy zero-rate handling. Total function:
// finite numeric inputs always yield finite numeric outputs.
func Compute(grandTotal float64, cgst, sgst, igst *float64) Breakdown {
	return ComputeWithOptions(grandTotal, cgst, sgst, igst, Options{})
}

// ComputeWithOptions is Compute with explicit rate-resolution options.
func ComputeWithOptions(grandTotal float64, cgst, sgst, igst *float64, opt Options) Breakdown {
	b := Breakdown{
		CGSTRate: resolveRate(cgst, DefaultCGSTRate, opt.ExplicitZero),
		SGSTRate: resolveRate(sgst, DefaultSGSTRate, opt.ExplicitZero),
		IGSTRate: resolveRate(igst, DefaultIGSTRate, opt.ExplicitZero),
	}

	b.CGSTAmount = grandTotal * b.CGSTRate / 100
	b.SGSTAmount = grandTotal * b.SGSTRate / 100
	b.IGSTAmount = grandTotal * b.IGSTRate / 100
	b.TotalWithTax = grandTotal + b.CGSTAmount + b.SGSTAmount + b.IGSTAmount

	return b
}

func resolveRate(r *float64, def float64, explicitZero bool) float64 {
	if r == nil {
		return def
	}
	if *r == 0 && !explicitZero {
		return def
	}
	return *r
}
