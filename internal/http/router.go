package api

import (
	"log"
	stdhttp "net/http"

	intconfig "bps-backend/internal/config"
	h "bps-backend/internal/http/handlers"
	"bps-backend/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env, profile intconfig.CompanyProfile) *gin.Engine {
	h.Configure(env, profile)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.AllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		auth := api.Group("/auth")
		auth.POST("/login", h.Login)

		admin := api.Group("")
		admin.Use(middleware.RequireAuth([]byte(env.JWTSecret)))

		bookings := admin.Group("/bookings")
		bookings.GET("/:id/slip", h.GetSlip)
		bookings.GET("/:id/slip/print", h.GetSlipPrint)
		bookings.GET("/:id/slip.pdf", h.GetSlipPDF)
		bookings.POST("/:id/slip/pdf", h.PostSlipRaster)

		binGroup := admin.Group("/bin")
		binGroup.GET("", h.GetBin)
		binGroup.PUT("/:id/restore", h.RestoreBinRecord)
	}

	return r
}
