package handlers

import (
	"net/http"
	"strings"

	"bps-backend/internal/bin"
	"bps-backend/internal/http/middleware"
	"bps-backend/internal/repositories"
	"bps-backend/internal/services"

	"github.com/gin-gonic/gin"
)

func binService(c *gin.Context) services.BinService {
	return services.BinService{
		BinRepo:   repositories.BinRepository{},
		RequestID: middleware.GetRequestID(c),
	}
}

// GetBin lists soft-deleted bookings sorted by the requested column.
// Defaults mirror the dashboard table: pickup location, ascending.
func GetBin(c *gin.Context) {
	key, ok := bin.ParseKey(c.DefaultQuery("sort", string(bin.KeyPickupLocation)))
	if !ok {
		RespondError(c, http.StatusBadRequest, "invalid sort key", nil)
		return
	}
	dir, ok := bin.ParseDirection(c.DefaultQuery("dir", string(bin.Asc)))
	if !ok {
		RespondError(c, http.StatusBadRequest, "invalid sort direction", nil)
		return
	}

	records, err := binService(c).List(key, dir)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"records": records,
		"sort":    key,
		"dir":     dir,
	})
}

// RestoreBinRecord brings one deleted booking back.
func RestoreBinRecord(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := binService(c).Restore(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "record restored", "id": id})
}
