package http

import (
	"github.com/gin-gonic/gin"

	"taskie/internal/middleware"
)

// RegisterRoutes maps the note endpoints onto rg (mounted at /api/note).
// Every route requires a session token.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.Use(mw.Auth())
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.DELETE("", h.Delete)
	rg.POST("/complete", h.Complete)
}
