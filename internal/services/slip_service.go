package services

import (
	"context"
	"image"
	"io"

	"bps-backend/internal/domain"
	"bps-backend/internal/repositories"
	"bps-backend/internal/slip"
	"bps-backend/internal/slip/export"
	"bps-backend/internal/utils"
)

// SlipService produces the consignment slip in all three forms: screen HTML,
// printable document, and PDF download.
type SlipService struct {
	BookingRepo repositories.BookingRepository
	Builder     slip.Builder
	Renderer    slip.Renderer
	RequestID   string
	Loader      func(string) (domain.Booking, error)
}

func (s SlipService) loadBooking(id string) (domain.Booking, error) {
	if s.Loader != nil {
		return s.Loader(id)
	}
	return s.BookingRepo.GetByID(id)
}

// Document builds the slip document model for one booking.
func (s SlipService) Document(id string) (slip.Document, error) {
	b, err := s.loadBooking(id)
	if err != nil {
		return slip.Document{}, err
	}
	return s.Builder.Build(&b)
}

// RenderHTML returns the two-copy slip markup plus its stylesheet.
func (s SlipService) RenderHTML(id string) (html, css string, err error) {
	doc, err := s.Document(id)
	if err != nil {
		return "", "", err
	}
	html, err = s.Renderer.Render(doc)
	if err != nil {
		return "", "", domain.InternalError{Msg: "slip render failed", Err: err}
	}
	return html, s.Renderer.StyleSheet(), nil
}

// Print renders the slip and writes the printable document to the target.
func (s SlipService) Print(target io.Writer, id string) error {
	html, css, err := s.RenderHTML(id)
	if err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "slip", "print", "booking_id="+id)
	return export.Print(target, "Slip "+id, css, html)
}

// GeneratePDF draws the slip into a PDF straight from the document model.
func (s SlipService) GeneratePDF(ctx context.Context, session *export.Session, id string) ([]byte, string, error) {
	doc, err := s.Document(id)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "slip", "generate_pdf", "booking_id="+id)

	name := doc.FileName()
	data, err := session.Run(ctx, func() ([]byte, error) {
		data, _, err := export.BuildPDF(doc)
		return data, err
	})
	if err != nil {
		return nil, "", err
	}
	return data, name, nil
}

// PaginateRaster turns a client-captured slip bitmap into the paginated PDF.
// The booking is loaded only to validate the id and name the file.
func (s SlipService) PaginateRaster(ctx context.Context, session *export.Session, id string, img image.Image) ([]byte, string, error) {
	doc, err := s.Document(id)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "slip", "paginate_raster", "booking_id="+id)

	data, err := session.Run(ctx, func() ([]byte, error) {
		return export.Paginator{}.Paginate(img)
	})
	if err != nil {
		return nil, "", err
	}
	return data, doc.FileName(), nil
}
