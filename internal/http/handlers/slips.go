package handlers

import (
	"bytes"
	"errors"
	"image/png"
	"io"
	"net/http"
	"strings"
	"sync"

	"bps-backend/internal/http/middleware"
	"bps-backend/internal/repositories"
	"bps-backend/internal/services"
	"bps-backend/internal/slip"
	"bps-backend/internal/slip/export"
	"bps-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

const maxRasterBytes = 16 << 20

// One export session per booking slip; a second export against the same
// slip while one runs is rejected instead of capturing inconsistent state.
var (
	sessionsMu sync.Mutex
	sessions   = map[string]*export.Session{}
)

func slipSession(id string) *export.Session {
	sessionsMu.Lock()
	defer sessionsMu.Unlock()
	s, ok := sessions[id]
	if !ok {
		s = &export.Session{}
		sessions[id] = s
	}
	return s
}

func slipService(c *gin.Context) services.SlipService {
	return services.SlipService{
		BookingRepo: repositories.BookingRepository{},
		Builder:     slip.NewBuilder(companyProfile()),
		Renderer:    slip.NewRenderer(),
		RequestID:   middleware.GetRequestID(c),
	}
}

// GetSlip returns the two-copy slip as a screen-viewable HTML page.
func GetSlip(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	html, css, err := slipService(c).RenderHTML(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	page := "<!doctype html>\n<html><head><meta charset=\"utf-8\" /><style>" + css + "</style></head><body>" + html + "</body></html>"
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

// GetSlipPrint returns the printable document that triggers the host print
// dialog on load.
func GetSlipPrint(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	svc := slipService(c)

	html, css, err := svc.RenderHTML(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := export.Print(c.Writer, "Slip "+id, css, html); err != nil {
		// status already sent; the broken target can only be logged
		utils.LogEvent(middleware.GetRequestID(c), "slip", "print_target_error", err.Error())
	}
}

// GetSlipPDF streams the vector PDF download.
func GetSlipPDF(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	data, filename, err := slipService(c).GeneratePDF(c.Request.Context(), slipSession(id), id)
	if err != nil {
		respondExportError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

// PostSlipRaster accepts the client-captured slip bitmap (PNG, 2x scale)
// and responds with the paginated multi-page PDF.
func PostSlipRaster(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxRasterBytes))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "raster body read failed", err)
		return
	}
	img, err := png.Decode(bytes.NewReader(body))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "raster body is not a valid PNG", err)
		return
	}

	data, filename, err := slipService(c).PaginateRaster(c.Request.Context(), slipSession(id), id, img)
	if err != nil {
		respondExportError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

func respondExportError(c *gin.Context, err error) {
	if errors.Is(err, export.ErrExportInFlight) {
		respondError(c, http.StatusConflict, "export_in_flight", err.Error(), nil)
		return
	}
	RespondDomainError(c, err)
}
