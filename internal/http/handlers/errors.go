package handlers

import (
	"net/http"

	"bps-backend/internal/domain"
	"bps-backend/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, code, message string, err error) {
	payload := gin.H{
		"error":      message,
		"code":       code,
		"request_id": middleware.GetRequestID(c),
	}
	if err != nil && err.Error() != message {
		payload["details"] = err.Error()
	}
	c.JSON(status, payload)
}

// RespondDomainError maps domain errors to HTTP responses.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error(), nil)
	case domain.IsUnavailable(err):
		respondError(c, http.StatusServiceUnavailable, "unavailable", err.Error(), nil)
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", "something went wrong", nil)
	}
}
