package slip

import (
	"bytes"
	"html/template"
)

// Two identical copies per page: one travels with the parcel, one stays at
// the booking office. The dashed divider is the tear line.
const slipHTMLTemplate = `<div class="slip-page">
{{template "invoice" .}}
<hr class="copy-divider" />
{{template "invoice" .}}
</div>

{{define "invoice"}}<div class="invoice">
  <div class="invoice-header">
    <div class="company">
      <h1>{{.Header.CompanyName}}</h1>
      <div class="jurisdiction">{{.Header.Jurisdiction}}</div>
    </div>
    <div class="tax-ids">
      <div>GSTIN : {{.Header.GSTIN}}</div>
      <div>PAN : {{.Header.PAN}}</div>
    </div>
  </div>

  <div class="offices">
    {{range .Offices}}<div class="office">
      <span class="office-city">{{.City}}</span> : <span class="office-address">{{.Address}}</span>
      <span class="office-phone">{{.Phone}}</span>
    </div>
    {{end}}
  </div>

  {{range .Meta}}<div class="meta-row">
    <span>{{.Left.Label}}: <strong>{{.Left.Value}}</strong></span>
    <span>{{.Right.Label}}: <strong>{{.Right.Value}}</strong></span>
  </div>
  {{end}}

  <table class="items">
    <thead>
      <tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr>
    </thead>
    <tbody>
      {{range .Items}}<tr>
        <td>{{.No}}</td>
        <td>{{.Insurance}}</td>
        <td>{{.VPPAmount}}</td>
        <td>{{.ToPay}}</td>
        <td>{{.Weight}}</td>
        <td>{{.Amount}}</td>
      </tr>
      {{end}}
      {{range .Totals}}<tr{{if .Bold}} class="total-row"{{end}}>
        <td colspan="5" class="total-label">{{.Label}}</td>
        <td class="total-amount">{{.Amount}}</td>
      </tr>
      {{end}}
    </tbody>
  </table>
</div>{{end}}`

// Page geometry matches the dashboard dialog: fixed A4 width, bounded height
// with scroll overflow on screen.
const slipCSS = `.slip-page {
  width: 210mm;
  max-height: 90vh;
  overflow-y: auto;
  background: #fff;
  padding: 8px;
  font-family: "Helvetica Neue", Arial, sans-serif;
  color: #000;
}
.invoice { border: 1.5px solid #000; margin: 8px; }
.invoice-header { display: flex; justify-content: space-between; padding: 8px; }
.invoice-header h1 { font-size: 20px; margin: 0; border-bottom: 2px solid #949090; }
.jurisdiction { display: inline-block; border-bottom: 2px solid #949090; }
.tax-ids { text-align: right; font-weight: bold; font-size: 13px; }
.offices { padding: 8px; }
.office-city { font-size: 13px; }
.office-address, .office-phone { font-size: 11px; font-weight: bold; }
.meta-row {
  display: flex; justify-content: space-between;
  border-top: 1px solid #000; padding: 6px 8px;
}
.items { width: 100%; border-collapse: collapse; margin-top: 8px; }
.items th, .items td { border: 1px solid #000; padding: 4px; text-align: center; font-size: 13px; }
.items th { font-weight: bold; }
.total-row td { font-weight: bold; }
.total-label { text-align: right !important; }
.copy-divider { border: none; border-top: 1px dashed #000; margin: 8px 0; }
@media print {
  .slip-page { max-height: none; overflow: visible; }
}`

var slipTpl = template.Must(template.New("slip").Parse(slipHTMLTemplate))

// Renderer materializes a Document into the two-copy slip markup. Layout
// only: every value arrives pre-formatted on the Document.
type Renderer struct{}

func NewRenderer() Renderer { return Renderer{} }

// Render returns the slip page markup for one booking document.
func (Renderer) Render(doc Document) (string, error) {
	var buf bytes.Buffer
	if err := slipTpl.Execute(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// StyleSheet returns the CSS shared by the screen view and the print export.
func (Renderer) StyleSheet() string { return slipCSS }
