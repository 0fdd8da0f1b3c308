package export

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/phpdave11/gofpdf"

	"bps-backend/internal/domain"
	"bps-backend/internal/slip"
	"bps-backend/internal/utils"
)

const (
	pageMargin  = 10.0
	contentW    = a4WidthMM - 2*pageMargin
	amountColW  = 30.0
	cellH       = 6.0
	headerFontH = 14.0
)

// BuildPDF draws both slip copies straight from the document model with
// gofpdf. This is the server-side download path; no rasterization involved.
func BuildPDF(doc slip.Document) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Slip "+doc.BookingID, true)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.AddPage()

	drawInvoice(pdf, doc)

	// tear line between the two copies
	y := pdf.GetY() + 4
	pdf.SetDashPattern([]float64{2, 2}, 0)
	pdf.Line(pageMargin, y, a4WidthMM-pageMargin, y)
	pdf.SetDashPattern([]float64{}, 0)
	pdf.SetY(y + 4)

	drawInvoice(pdf, doc)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Msg: "slip pdf generation failed", Err: err}
	}
	return buf.Bytes(), doc.FileName(), nil
}

func drawInvoice(pdf *gofpdf.Fpdf, doc slip.Document) {
	pdf.SetFont("Helvetica", "B", headerFontH)
	pdf.CellFormat(contentW*0.65, 7, doc.Header.CompanyName, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(contentW*0.35, 7, "GSTIN : "+doc.Header.GSTIN, "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW*0.65, 5, doc.Header.Jurisdiction, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(contentW*0.35, 5, "PAN : "+doc.Header.PAN, "", 1, "R", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 8)
	for _, office := range doc.Offices {
		pdf.MultiCell(contentW, 4, office.City+" : "+office.Address+"  "+office.Phone, "", "L", false)
	}
	pdf.Ln(1)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range doc.Meta {
		pdf.CellFormat(contentW/2, cellH, row.Left.Label+": "+utils.OrDash(row.Left.Value), "T", 0, "L", false, 0, "")
		pdf.CellFormat(contentW/2, cellH, row.Right.Label+": "+utils.OrDash(row.Right.Value), "T", 1, "R", false, 0, "")
	}

	colW := contentW / float64(len(doc.Columns))
	pdf.SetFont("Helvetica", "B", 8)
	for _, col := range doc.Columns {
		pdf.CellFormat(colW, cellH, col, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, item := range doc.Items {
		pdf.CellFormat(colW, cellH, strconv.Itoa(item.No), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colW, cellH, pdfAmount(item.Insurance), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colW, cellH, pdfAmount(item.VPPAmount), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colW, cellH, item.ToPay, "1", 0, "C", false, 0, "")
		pdf.CellFormat(colW, cellH, item.Weight, "1", 0, "C", false, 0, "")
		pdf.CellFormat(colW, cellH, pdfAmount(item.Amount), "1", 1, "C", false, 0, "")
	}

	for _, row := range doc.Totals {
		style := ""
		if row.Bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 8)
		pdf.CellFormat(contentW-amountColW, cellH, row.Label, "1", 0, "R", false, 0, "")
		pdf.CellFormat(amountColW, cellH, pdfAmount(row.Amount), "1", 1, "C", false, 0, "")
	}
}

// Core PDF fonts have no rupee glyph; fall back to the textual prefix.
func pdfAmount(s string) string {
	return strings.Replace(s, "₹", "Rs. ", 1)
}
