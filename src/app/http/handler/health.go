package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"raidmaster/src/app/http/response"
	"raidmaster/src/core/usecase"
)

// HealthHandler serves liveness and store readiness.
type HealthHandler struct {
	health *usecase.HealthService
}

func NewHealthHandler(health *usecase.HealthService) *HealthHandler {
	return &HealthHandler{health: health}
}

// Health answers as long as the process is serving.
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	response.OK(c, usecase.HealthStatus{Status: usecase.HealthOK})
}

// DetailedHealth also checks the store; a degraded store answers 503.
// GET /health/detailed
func (h *HealthHandler) DetailedHealth(c *gin.Context) {
	status := h.health.Check(c.Request.Context())
	if status.Status != usecase.HealthOK {
		c.JSON(http.StatusServiceUnavailable, response.Success{Data: status})
		return
	}
	response.OK(c, status)
}
