package handler

import (
	"net/http"

	moduledto "admin-panel-server/internal/modules/settings/dto"

	"github.com/gin-gonic/gin"
)

func (h *Handler) UpdateTheme(c *gin.Context) {
	var req moduledto.UpdateThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数格式错误"})
		return
	}

	settings, err := h.settingsService.UpdateThemeClass(c.Request.Context(), *req.ThemeClass)
	if err != nil {
		writeServiceError(c, err, "更新主题失败")
		return
	}

	c.JSON(http.StatusOK, moduledto.SettingsResponse{ThemeClass: settings.ThemeClass})
}

func (h *Handler) ResetTheme(c *gin.Context) {
	settings, err := h.settingsService.ResetThemeClass(c.Request.Context())
	if err != nil {
		writeServiceError(c, err, "重置主题失败")
		return
	}

	c.JSON(http.StatusOK, moduledto.SettingsResponse{ThemeClass: settings.ThemeClass})
}
