// Package webui serves the server-rendered user management page.
package webui

import (
	"embed"
	"html/template"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"go.uber.org/zap"

	"user-management-service/internal/adapter/gin/middleware"
	"user-management-service/pkg/client"
	"user-management-service/pkg/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

// Handler renders the page and forwards form actions to the API.
// Failures are logged and never shown to the user.
type Handler struct {
	api  API
	tmpl *template.Template
	log  *zap.Logger
}

// NewHandler parses the embedded templates.
func NewHandler(api API, log *zap.Logger) (*Handler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Handler{api: api, tmpl: tmpl, log: log}, nil
}

// Register mounts the UI routes on r.
func (h *Handler) Register(r gin.IRoutes) {
	r.GET("/", h.Index)
	r.POST("/submit", h.Submit)
	r.POST("/users/:id/delete", h.Delete)
}

// NewRouter returns an engine serving the UI with the API's middleware chain.
func NewRouter(h *Handler, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(logger.RequestIDMiddleware())
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logger(log))
	h.Register(r)
	return r
}

// Index handles GET / and GET /?edit=<id>
func (h *Handler) Index(c *gin.Context) {
	ctx := c.Request.Context()
	log := logger.WithContext(ctx, h.log)

	form := NewForm()
	if raw, ok := c.GetQuery("edit"); ok {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Warn("invalid edit id", zap.String("id", raw))
		} else if u, err := h.api.GetUser(ctx, id); err != nil {
			log.Error("error fetching user", zap.Int64("id", id), zap.Error(err))
		} else {
			form = EditForm(u)
		}
	}

	h.render(c, form)
}

// Submit handles POST /submit
func (h *Handler) Submit(c *gin.Context) {
	log := logger.WithContext(c.Request.Context(), h.log)

	form, err := ParseForm(c.PostForm("id"), c.PostForm("name"), c.PostForm("email"))
	if err != nil {
		log.Warn("invalid form payload", zap.Error(err))
		h.render(c, form)
		return
	}

	if _, err := form.Submit(c.Request.Context(), h.api); err != nil {
		log.Error("error saving user", zap.Error(err))
		h.render(c, form)
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// Delete handles POST /users/:id/delete
func (h *Handler) Delete(c *gin.Context) {
	log := logger.WithContext(c.Request.Context(), h.log)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		log.Warn("invalid delete id", zap.String("id", c.Param("id")))
	} else if _, err := h.api.DeleteUser(c.Request.Context(), id); err != nil {
		log.Error("error deleting user", zap.Int64("id", id), zap.Error(err))
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// render fetches the list and renders it with form. A failed fetch renders an empty list.
func (h *Handler) render(c *gin.Context, form Form) {
	users, err := h.api.ListUsers(c.Request.Context())
	if err != nil {
		logger.WithContext(c.Request.Context(), h.log).Error("error fetching users", zap.Error(err))
		users = nil
	}

	c.Render(http.StatusOK, render.HTML{
		Template: h.tmpl,
		Name:     "index",
		Data:     NewPage(users, form),
	})
}

var _ API = (*client.Client)(nil)
