package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const healthCheckTimeout = 2 * time.Second

// HealthHandler serves the liveness check and the storage readiness check.
type HealthHandler struct {
	service string
	ping    func(context.Context) error
	log     *zap.Logger
}

// NewHealthHandler creates a HealthHandler. ping may be nil when there is nothing to check.
func NewHealthHandler(service string, ping func(context.Context) error, log *zap.Logger) *HealthHandler {
	return &HealthHandler{service: service, ping: ping, log: log}
}

// Test handles GET /test
func (h *HealthHandler) Test(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{Message: "API is working"})
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	if h.ping != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
		defer cancel()

		if err := h.ping(ctx); err != nil {
			h.log.Warn("health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"service": h.service,
				"error":   err.Error(),
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": h.service,
	})
}
