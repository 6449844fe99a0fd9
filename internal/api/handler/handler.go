package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yatube-dev/yatube/internal/api/middleware"
	"github.com/yatube-dev/yatube/internal/form"
	"github.com/yatube-dev/yatube/internal/service"
)

type Handler struct {
	posts    service.PostService
	comments service.CommentService
	rels     service.RelationshipService
	auth     service.AuthService
	logger   *zap.Logger
}

func New(
	posts service.PostService,
	comments service.CommentService,
	rels service.RelationshipService,
	auth service.AuthService,
	logger *zap.Logger,
) *Handler {
	return &Handler{posts: posts, comments: comments, rels: rels, auth: auth, logger: logger}
}

// data builds the template context shared by every page: current user plus
// defaults for the keys templates always dereference.
func (h *Handler) data(c *gin.Context, extra gin.H) gin.H {
	d := gin.H{
		"form_errors": form.Errors{},
		"values":      map[string]string{},
		"base_url":    c.Request.URL.Path,
		"next":        "",
	}
	if u := middleware.UserFrom(c); u != nil {
		d["user"] = u
	}
	for k, v := range extra {
		d[k] = v
	}
	return d
}

// NotFound renders the custom 404 page. Registered both as the NoRoute
// handler and used whenever a slug, username or post id is unknown.
func (h *Handler) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", h.data(c, nil))
}

// fail maps a service error to a page: unknown identifiers turn into the
// custom 404, anything else is logged and answered with a bare 500.
func (h *Handler) fail(c *gin.Context, err error) {
	if errors.Is(err, service.ErrNotFound) {
		h.NotFound(c)
		return
	}
	h.logger.Error("request failed",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	c.String(http.StatusInternalServerError, "Internal server error")
}
