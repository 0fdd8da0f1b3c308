package export

import (
	"bytes"
	"context"
	"image"
	"image/draw"
	"image/png"
	"strconv"

	"github.com/phpdave11/gofpdf"

	"bps-backend/internal/domain"
)

const (
	a4WidthMM  = 210.0
	a4HeightMM = 297.0

	// SupersampleScale is the capture factor clients are expected to use
	// when rasterizing the rendered slip.
	SupersampleScale = 2.0
)

// Rasterizer captures rendered slip markup as a bitmap. Rasterization lives
// with the host (a headless browser or the dashboard client); this package
// only paginates the result.
type Rasterizer interface {
	Rasterize(ctx context.Context, html string, scale float64) (image.Image, error)
}

// Paginator slices a captured slip bitmap across successive A4 portrait
// pages. The image width is taken to span the full 210mm page width; page
// frames are cut from the top until the image is exhausted.
type Paginator struct{}

// Paginate produces the multi-page PDF. Every vertical pixel of the source
// lands on exactly one page; a short last page keeps its blank remainder.
func (Paginator) Paginate(img image.Image) ([]byte, error) {
	if img == nil {
		return nil, domain.ValidationError{Field: "image", Msg: "missing raster image"}
	}
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, domain.ValidationError{Field: "image", Msg: "empty raster image"}
	}

	pxPerMM := float64(width) / a4WidthMM
	pageHeightPx := int(a4HeightMM * pxPerMM)
	if pageHeightPx < 1 {
		pageHeightPx = 1
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)

	for i, slice := range pageSlices(height, pageHeightPx) {
		top, bottom := slice[0], slice[1]

		page := image.NewRGBA(image.Rect(0, 0, width, bottom-top))
		draw.Draw(page, page.Bounds(), img, image.Pt(bounds.Min.X, bounds.Min.Y+top), draw.Src)

		var pngBuf bytes.Buffer
		if err := png.Encode(&pngBuf, page); err != nil {
			return nil, domain.InternalError{Msg: "slice encode failed", Err: err}
		}

		name := "slip-page-" + strconv.Itoa(i)
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader(name, opts, &pngBuf)
		pdf.AddPage()
		pdf.ImageOptions(name, 0, 0, a4WidthMM, float64(bottom-top)/pxPerMM, false, opts, 0, "")
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, domain.InternalError{Msg: "paginated pdf generation failed", Err: err}
	}
	return out.Bytes(), nil
}

// pageSlices returns the half-open [top, bottom) pixel ranges, one per page.
// Ranges tile the full height with no gap or overlap.
func pageSlices(height, pageHeight int) [][2]int {
	var slices [][2]int
	for top := 0; top < height; top += pageHeight {
		bottom := top + pageHeight
		if bottom > height {
			bottom = height
		}
		slices = append(slices, [2]int{top, bottom})
	}
	return slices
}
