package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vooz/donation-processor/internal/infrastructure/adapter/api/dto"
)

// HealthChecker probes a dependency
type HealthChecker interface {
	Check(ctx context.Context) error
}

// HealthHandler answers readiness probes
type HealthHandler struct {
	database HealthChecker
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(database HealthChecker) *HealthHandler {
	return &HealthHandler{database: database}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.database.Check(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{
			Status:   "unavailable",
			Database: "down",
		})
		return
	}

	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:   "ok",
		Database: "up",
	})
}
