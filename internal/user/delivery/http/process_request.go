package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "taskie/pkg/errors"
)

// processRegisterReq binds and validates the register request body.
func (h *handler) processRegisterReq(c *gin.Context) (registerReq, error) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Debugf(c.Request.Context(), "user.http.processRegisterReq: %v", err)
		return req, pkgErrors.ErrBadRequest
	}
	return req, req.validate()
}

// processLoginReq binds and validates the login request body.
func (h *handler) processLoginReq(c *gin.Context) (loginReq, error) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Debugf(c.Request.Context(), "user.http.processLoginReq: %v", err)
		return req, pkgErrors.ErrBadRequest
	}
	return req, req.validate()
}
