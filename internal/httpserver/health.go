package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "taskie/pkg/errors"
	"taskie/pkg/response"
)

const (
	ServiceName    = "taskie"
	ServiceVersion = "1.0.0"
)

func (srv HTTPServer) status(state string) gin.H {
	return gin.H{
		"status":      state,
		"service":     ServiceName,
		"version":     ServiceVersion,
		"environment": srv.environment,
	}
}

// healthCheck reports that the process is serving requests.
// @Summary Health Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.status("healthy"))
}

// readyCheck is ready once the note database answers a ping.
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Failure 503 {object} response.Resp "Database unavailable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()
	if err := srv.db.PingContext(ctx); err != nil {
		srv.l.Warnf(ctx, "httpserver.readyCheck: %v", err)
		response.Error(c, pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "database unavailable"))
		return
	}
	response.OK(c, srv.status("ready"))
}

// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.status("alive"))
}
