package handler

import (
	"admin-panel-server/internal/modules/common/httpx"
	settingsservice "admin-panel-server/internal/modules/settings/service"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	settingsService *settingsservice.Service
}

func New(settingsService *settingsservice.Service) *Handler {
	return &Handler{settingsService: settingsService}
}

func writeServiceError(c *gin.Context, err error, fallbackMessage string) {
	httpx.WriteServiceError(c, err, fallbackMessage)
}
