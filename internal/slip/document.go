// Package slip assembles and renders the printable consignment slip for a
// parcel booking. The document model is built once per booking and consumed
// by the renderer and the export strategies; nothing here mutates the booking.
package slip

import (
	"fmt"
	"strconv"

	"bps-backend/internal/config"
	"bps-backend/internal/domain"
	"bps-backend/internal/tax"
	"bps-backend/internal/utils"
)

// ItemColumns is the fixed column order of the consignment table.
var ItemColumns = []string{"No. of", "Insurance", "VPP Amount", "To Pay/Paid", "Weight (Kgs)", "Amount"}

type Header struct {
	CompanyName  string
	Jurisdiction string
	GSTIN        string
	PAN          string
}

// Field is one labeled value in the reference/party block.
type Field struct {
	Label string
	Value string
}

// MetaRow pairs the two fields printed on one bordered line.
type MetaRow struct {
	Left  Field
	Right Field
}

// ItemRow carries pre-formatted cell values; the renderer must not reformat.
type ItemRow struct {
	No        int
	Insurance string
	VPPAmount string
	ToPay     string
	Weight    string
	Amount    string
}

type TotalRow struct {
	Label  string
	Amount string
	Bold   bool
}

// Document is one assembled invoice copy. Identical booking input always
// yields an identical Document; no global state is consulted.
type Document struct {
	Header  Header
	Offices []config.OfficeAddress
	Meta    []MetaRow
	Columns []string
	Items   []ItemRow
	Totals  []TotalRow
	Tax     tax.Breakdown

	BookingID string
}

// Builder assembles slip documents for one company profile.
type Builder struct {
	Profile config.CompanyProfile
}

func NewBuilder(profile config.CompanyProfile) Builder {
	return Builder{Profile: profile}
}

// Build assembles the document for one booking. A nil booking is the
// no-render guard, reported as a validation error rather than a panic;
// missing nested fields degrade to blank display values.
func (bld Builder) Build(b *domain.Booking) (Document, error) {
	if b == nil {
		return Document{}, domain.ValidationError{Field: "booking", Msg: "missing booking data"}
	}

	breakdown := tax.ComputeWithOptions(b.GrandTotal, b.CGST, b.SGST, b.IGST, tax.Options{
		ExplicitZero: bld.Profile.ZeroRateMode == config.ZeroRateExplicit,
	})

	stationName, stationGST := "", ""
	if b.StartStation != nil {
		stationName = utils.TrimOrEmpty(b.StartStation.StationName)
		stationGST = utils.TrimOrEmpty(b.StartStation.GST)
	}

	doc := Document{
		Header: Header{
			CompanyName:  bld.Profile.Name,
			Jurisdiction: fmt.Sprintf(bld.Profile.Jurisdiction, stationName),
			GSTIN:        stationGST,
			PAN:          bld.Profile.PAN,
		},
		Offices: bld.Profile.Offices,
		Meta: []MetaRow{
			{
				Left:  Field{Label: "Ref. No.", Value: b.FirstRefNo()},
				Right: Field{Label: "Date", Value: utils.FormatSlipDate(b.BookingDate)},
			},
			{
				Left:  Field{Label: "From (City)", Value: b.FromCity},
				Right: Field{Label: "To (City)", Value: b.ToCity},
			},
			{
				Left:  Field{Label: "From", Value: b.SenderName},
				Right: Field{Label: "GSTIN", Value: b.SenderGST},
			},
			{
				Left:  Field{Label: "To", Value: b.ReceiverName},
				Right: Field{Label: "GSTIN", Value: b.ReceiverGST},
			},
		},
		Columns:   ItemColumns,
		Tax:       breakdown,
		BookingID: b.ID,
	}

	for i, item := range b.Items {
		doc.Items = append(doc.Items, ItemRow{
			No:        i + 1,
			Insurance: utils.FormatRupee(item.Insurance),
			VPPAmount: utils.FormatRupee(item.VPPAmount),
			ToPay:     item.ToPay,
			Weight:    formatNumber(item.Weight),
			Amount:    utils.FormatRupee(item.Amount),
		})
	}

	// Totals render even when the item table is empty.
	doc.Totals = append(doc.Totals, TotalRow{Label: "Sub Total", Amount: utils.FormatRupee(b.GrandTotal), Bold: true})
	if breakdown.CGSTRate > 0 {
		doc.Totals = append(doc.Totals, taxRow("CGST", breakdown.CGSTRate, breakdown.CGSTAmount))
	}
	if breakdown.SGSTRate > 0 {
		doc.Totals = append(doc.Totals, taxRow("SGST", breakdown.SGSTRate, breakdown.SGSTAmount))
	}
	if breakdown.IGSTRate > 0 {
		doc.Totals = append(doc.Totals, taxRow("IGST", breakdown.IGSTRate, breakdown.IGSTAmount))
	}
	doc.Totals = append(doc.Totals, TotalRow{Label: "Total (Incl. Tax)", Amount: utils.FormatRupee(breakdown.TotalWithTax), Bold: true})

	return doc, nil
}

// FileName names the exported PDF, falling back to the company initials when
// the booking carries no id.
func (d Document) FileName() string {
	return "Slip_" + utils.SafeFilenamePart(d.BookingID) + ".pdf"
}

func taxRow(name string, rate, amount float64) TotalRow {
	return TotalRow{
		Label:  fmt.Sprintf("%s (%s%%)", name, formatNumber(rate)),
		Amount: utils.FormatRupee(amount),
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
