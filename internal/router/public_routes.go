package router

import (
	settingshandler "admin-panel-server/internal/modules/settings/handler"

	"github.com/gin-gonic/gin"
)

func registerPublicRoutes(api *gin.RouterGroup, h *settingshandler.Handler) {
	api.GET("/settings", h.GetSettings)
	api.GET("/settings/themes", h.GetThemes)
}
