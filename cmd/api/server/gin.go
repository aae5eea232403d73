package server

import (
	"net/http"
	"time"

	"user-management-service/cmd/api/di"
	ginrouter "user-management-service/internal/adapter/gin/router"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupGinServer creates and configures the Gin REST API server
func SetupGinServer(c *di.Container, addr string, l *zap.Logger) *http.Server {
	gin.SetMode(ginMode(c.Config.App.Environment))

	router := ginrouter.SetupRouter(ginrouter.Dependencies{
		UserHandler:   c.UserHandler,
		HealthHandler: c.HealthHandler,
		Metrics:       c.Metrics,
		Gatherer:      c.Registry,
		RateLimiter:   c.RateLimiter,
		Logger:        l,
	})

	l.Info("Gin REST API configured", zap.String("address", addr))

	return &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 2 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

func ginMode(env string) string {
	switch env {
	case "production":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
