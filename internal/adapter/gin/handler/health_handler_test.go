package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(ping func(context.Context) error) *gin.Engine {
		h := NewHealthHandler("user-management-service", ping, zaptest.NewLogger(t))
		r := gin.New()
		r.GET("/test", h.Test)
		r.GET("/health", h.Health)
		return r
	}

	t.Run("Test endpoint", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter(nil).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"API is working"}`, w.Body.String())
	})

	t.Run("Healthy", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter(func(context.Context) error { return nil }).
			ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"healthy","service":"user-management-service"}`, w.Body.String())
	})

	t.Run("Unhealthy", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter(func(context.Context) error { return errors.New("db unreachable") }).
			ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "db unreachable")
	})
}
