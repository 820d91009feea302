package http

import (
	"github.com/gin-gonic/gin"

	"taskie/internal/middleware"
)

// RegisterRoutes maps the account endpoints onto rg (mounted at /api).
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/register", h.Register)
	rg.POST("/login", h.Login)
	rg.GET("/user/profile", mw.Auth(), h.Profile)
}
