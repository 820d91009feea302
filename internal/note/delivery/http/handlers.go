package http

import (
	"github.com/gin-gonic/gin"

	"taskie/internal/middleware"
	"taskie/pkg/response"
)

// List godoc
// @Summary     List notes
// @Description Returns all of the caller's notes, completed ones included.
// @Tags        Note
// @Produce     json
// @Param       Authorization header string true "Session token"
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/note [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	output, err := h.uc.List(ctx, sc)
	if err != nil {
		h.fail(c, "uc.List", err)
		return
	}

	response.Raw(c, h.newListResp(output))
}

// Create godoc
// @Summary     Create a note
// @Description Stores a new open note and echoes it back.
// @Tags        Note
// @Accept      json
// @Produce     json
// @Param       Authorization header string    true "Session token"
// @Param       body          body   createReq true "Note data"
// @Success     200 {object} noteResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/note [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.fail(c, "uc.Create", err)
		return
	}

	response.Raw(c, newNoteResp(output.Note))
}

// Complete godoc
// @Summary     Complete a note
// @Tags        Note
// @Produce     json
// @Param       Authorization header string true "Session token"
// @Param       id            query  string true "Note ID"
// @Success     200 {object} messageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/note/complete [POST]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	req, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Complete(ctx, sc, req.ID); err != nil {
		h.fail(c, "uc.Complete", err)
		return
	}

	response.Raw(c, messageResp{Message: messageCompleted})
}

// Delete godoc
// @Summary     Delete a note
// @Tags        Note
// @Produce     json
// @Param       Authorization header string true "Session token"
// @Param       id            query  string true "Note ID"
// @Success     200 {object} messageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/note [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	req, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, sc, req.ID); err != nil {
		h.fail(c, "uc.Delete", err)
		return
	}

	response.Raw(c, messageResp{Message: messageDeleted})
}

func (h *handler) fail(c *gin.Context, op string, err error) {
	if mapped := h.mapError(err); mapped != nil {
		response.Error(c, mapped)
		return
	}
	h.l.Errorf(c.Request.Context(), "%s: %v", op, err)
	response.InternalError(c, err)
}
