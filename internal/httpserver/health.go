package httpserver

import (
	"github.com/gin-gonic/gin"

	"notes-to-tasks/pkg/response"
)

const (
	HealthMessage = "Notes to tasks, one line at a time"
	HealthVersion = "1.0.0"
	ServiceName   = "notes-to-tasks"
)

type healthResp struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	Version     string `json:"version"`
	Service     string `json:"service"`
	Environment string `json:"environment,omitempty"`
	Telegram    *bool  `json:"telegram,omitempty"`
}

func (srv HTTPServer) newHealthResp(status string) healthResp {
	return healthResp{
		Status:      status,
		Message:     HealthMessage,
		Version:     HealthVersion,
		Service:     ServiceName,
		Environment: srv.environment,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.newHealthResp("healthy"))
}

// readyCheck also reports whether the Telegram webhook is served.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	resp := srv.newHealthResp("ready")
	telegram := srv.telegramHandler != nil
	resp.Telegram = &telegram
	response.OK(c, resp)
}

// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.newHealthResp("alive"))
}
