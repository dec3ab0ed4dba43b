package router

import (
	"admin-panel-server/internal/middleware"
	settingshandler "admin-panel-server/internal/modules/settings/handler"

	"github.com/gin-gonic/gin"
)

func registerAdminRoutes(api *gin.RouterGroup, jwtSecret string, limiter gin.HandlerFunc, h *settingshandler.Handler) {
	adminGroup := api.Group("/admin")
	adminGroup.Use(limiter)
	adminGroup.Use(middleware.JWTAuth(jwtSecret))
	adminGroup.Use(middleware.AdminCheck())

	adminGroup.PUT("/settings/theme", h.UpdateTheme)
	adminGroup.DELETE("/settings/theme", h.ResetTheme)
}
