package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"workspace-admin/internal/session"
	"workspace-admin/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Workspace admin is up"
	HealthVersion = "1.0.0"
	ServiceName   = "workspace-admin"

	readyProbeID = "readiness-probe"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports ready once the session store answers.
// @Summary Readiness Check
// @Description Check if the session store is reachable
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Failure 503 {object} response.Resp "Session store unreachable"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()
	if _, err := srv.sessions.Get(ctx, readyProbeID); err != nil && !errors.Is(err, session.ErrNotFound) && !errors.Is(err, session.ErrExpired) {
		srv.l.Warnf(ctx, "httpserver.readyCheck: %v", err)
		response.Fail(c, http.StatusServiceUnavailable, "Session store unreachable", nil)
		return
	}
	response.OK(c, gin.H{
		"status":  "ready",
		"backend": srv.backend.BaseURL(),
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}
