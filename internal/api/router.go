package api

import (
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/yatube-dev/yatube/internal/api/handler"
	"github.com/yatube-dev/yatube/internal/api/middleware"
	"github.com/yatube-dev/yatube/internal/cache"
	"github.com/yatube-dev/yatube/internal/service"
	"github.com/yatube-dev/yatube/web"
)

// Options wires the router's collaborators.
type Options struct {
	Handler   *handler.Handler
	Auth      service.AuthService
	PageCache *cache.PageCache
	Logger    *zap.Logger
	MediaRoot string
	UseSentry bool
}

// NewRouter builds the full route table.
func NewRouter(opts Options) *gin.Engine {
	r := gin.New()
	r.SetHTMLTemplate(web.Templates())
	r.Use(gin.Recovery())
	if opts.UseSentry {
		r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(middleware.CurrentUser(opts.Auth))

	h := opts.Handler

	if opts.MediaRoot != "" {
		r.Static("/media", opts.MediaRoot)
	}

	// public pages; only the index is page-cached
	r.GET("/", middleware.PageCache(opts.PageCache, opts.Logger), h.Index)
	r.GET("/group/:slug/", h.GroupList)
	r.GET("/profile/:username/", h.Profile)
	r.GET("/posts/:id/", h.PostDetail)

	// auth surface
	r.GET("/auth/login/", h.LoginForm)
	r.POST("/auth/login/", middleware.RateLimit(rate.Limit(1), 5), h.Login)
	r.GET("/auth/signup/", h.SignupForm)
	r.POST("/auth/signup/", h.Signup)
	r.POST("/auth/logout/", h.Logout)

	// authenticated pages
	authed := r.Group("", middleware.RequireAuth())
	authed.GET("/create/", h.PostCreateForm)
	authed.POST("/create/", h.PostCreate)
	authed.GET("/posts/:id/edit/", h.PostEditForm)
	authed.POST("/posts/:id/edit/", h.PostEdit)
	authed.POST("/posts/:id/comment/", h.AddComment)
	authed.POST("/profile/:username/follow/", h.ProfileFollow)
	authed.POST("/profile/:username/unfollow/", h.ProfileUnfollow)
	authed.GET("/follow/", h.FollowIndex)

	r.NoRoute(h.NotFound)

	return r
}
