package handler

import (
	"net/http"

	"admin-panel-server/internal/consts"
	moduledto "admin-panel-server/internal/modules/settings/dto"

	"github.com/gin-gonic/gin"
)

// GetSettings 返回前端启动时需要的界面偏好
func (h *Handler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, moduledto.SettingsResponse{
		ThemeClass: h.settingsService.ThemeClass(),
	})
}

func (h *Handler) GetThemes(c *gin.Context) {
	themes := h.settingsService.Themes()
	if themes == nil {
		themes = []string{}
	}
	c.JSON(http.StatusOK, moduledto.ThemesResponse{
		Default: consts.DefaultThemeClass,
		Current: h.settingsService.ThemeClass(),
		Themes:  themes,
	})
}
