package router

import (
	"net/http"

	"user-management-service/api/swagger"
	"user-management-service/internal/adapter/gin/handler"
	"user-management-service/internal/adapter/gin/middleware"
	"user-management-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Dependencies holds what the router wires into routes and middleware.
// Metrics, Gatherer and RateLimiter are optional.
type Dependencies struct {
	UserHandler   *handler.UserHandler
	HealthHandler *handler.HealthHandler
	Metrics       *middleware.Metrics
	Gatherer      prometheus.Gatherer
	RateLimiter   *middleware.RateLimiter
	Logger        *zap.Logger
}

// SetupRouter configures and returns a Gin router with all routes and middleware
func SetupRouter(deps Dependencies) *gin.Engine {
	router := gin.New()

	// Global middleware. RequestIDMiddleware must precede Recovery.
	router.Use(logger.RequestIDMiddleware())
	router.Use(middleware.Recovery(deps.Logger))
	router.Use(middleware.Logger(deps.Logger))
	router.Use(middleware.CORS())
	if deps.Metrics != nil {
		router.Use(deps.Metrics.Handler())
	}
	router.Use(deps.RateLimiter.Handler())

	// Health
	router.GET("/test", deps.HealthHandler.Test)
	router.GET("/health", deps.HealthHandler.Health)

	if deps.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}
	router.GET("/swagger/*any", gin.WrapF(swagger.Handler()))

	users := router.Group("/users")
	{
		users.POST("", deps.UserHandler.CreateUser)
		users.GET("", deps.UserHandler.ListUsers)
		users.GET("/:id", deps.UserHandler.GetUser)
		users.PUT("/:id", deps.UserHandler.UpdateUser)
		users.DELETE("/:id", deps.UserHandler.DeleteUser)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handler.MessageResponse{Message: "route not found"})
	})

	return router
}
