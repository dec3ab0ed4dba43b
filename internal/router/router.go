package router

import (
	"context"
	"net/http"

	"admin-panel-server/internal/config"
	"admin-panel-server/internal/frontend"
	"admin-panel-server/internal/middleware"
	"admin-panel-server/internal/modules"

	"github.com/gin-gonic/gin"
)

type Router struct {
	ctx      context.Context
	cfg      config.Config
	modules  *modules.AppModules
	frontend *frontend.Server
}

func NewRouter(ctx context.Context, cfg config.Config, appModules *modules.AppModules, frontendServer *frontend.Server) *Router {
	return &Router{
		ctx:      ctx,
		cfg:      cfg,
		modules:  appModules,
		frontend: frontendServer,
	}
}

func (rt *Router) Init(r *gin.Engine) {
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(gin.Recovery())
	// 注册全局安全标头中间件
	r.Use(middleware.SecurityHeaders())

	api := r.Group("/api")
	// 应用请求体大小限制中间件
	api.Use(middleware.BodyLimitMiddleware(rt.cfg.Frontend.MaxBodySizeMB))

	api.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	registerPublicRoutes(api, rt.modules.Settings.Handler)

	adminLimiter := middleware.RateLimitMiddleware(rt.ctx, rt.cfg.RateLimit)
	registerAdminRoutes(api, rt.cfg.JWT.Secret, adminLimiter, rt.modules.Settings.Handler)

	registerFrontendRoutes(r, rt.frontend)
}
