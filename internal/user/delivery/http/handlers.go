package http

import (
	"github.com/gin-gonic/gin"

	"taskie/internal/middleware"
	"taskie/pkg/response"
)

// Register godoc
// @Summary     Register
// @Description Creates an account.
// @Tags        User
// @Accept      json
// @Produce     json
// @Param       body body registerReq true "Account data"
// @Success     200  {object} messageResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     409  {object} response.Resp "Conflict - email already registered"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/register [POST]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRegisterReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Register(ctx, req.toInput())
	if err != nil {
		h.fail(c, "uc.Register", err)
		return
	}

	response.Raw(c, messageResp{Message: output.Message})
}

// Login godoc
// @Summary     Login
// @Description Exchanges email and password for a session token.
// @Tags        User
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200  {object} loginResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.fail(c, "uc.Login", err)
		return
	}

	response.Raw(c, loginResp{Token: output.Token})
}

// Profile godoc
// @Summary     User profile
// @Description Returns the signed-in user's email and name.
// @Tags        User
// @Produce     json
// @Param       Authorization header string true "Session token"
// @Success     200 {object} profileResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/user/profile [GET]
func (h *handler) Profile(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Profile(ctx, sc)
	if err != nil {
		h.fail(c, "uc.Profile", err)
		return
	}

	response.Raw(c, h.newProfileResp(output))
}

func (h *handler) fail(c *gin.Context, op string, err error) {
	if mapped := h.mapError(err); mapped != nil {
		response.Error(c, mapped)
		return
	}
	h.l.Errorf(c.Request.Context(), "%s: %v", op, err)
	response.InternalError(c, err)
}
