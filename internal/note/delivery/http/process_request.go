package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "taskie/pkg/errors"
)

// processCreateReq binds and validates the create note request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Debugf(c.Request.Context(), "note.http.processCreateReq: %v", err)
		return req, pkgErrors.ErrBadRequest
	}
	return req, req.validate()
}

// processIDReq binds the ?id= query parameter.
func (h *handler) processIDReq(c *gin.Context) (idReq, error) {
	var req idReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errMissingID
	}
	return req, req.validate()
}
