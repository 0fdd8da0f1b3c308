package handlers

import (
	"net/http"
	"sync"

	"bps-backend/internal/config"
	"bps-backend/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

var (
	configMu  sync.RWMutex
	profile   = config.DefaultCompanyProfile()
	jwtSecret []byte
)

// Configure stores the deployment profile and auth secret handlers read from.
// Called once from the router before any request is served.
func Configure(env config.Env, p config.CompanyProfile) {
	configMu.Lock()
	defer configMu.Unlock()
	profile = p
	jwtSecret = []byte(env.JWTSecret)
}

func companyProfile() config.CompanyProfile {
	configMu.RLock()
	defer configMu.RUnlock()
	return profile
}

func authSecret() []byte {
	configMu.RLock()
	defer configMu.RUnlock()
	return jwtSecret
}

// RespondError sends standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	payload := gin.H{
		"message":    message,
		"request_id": middleware.GetRequestID(c),
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "empty body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}
