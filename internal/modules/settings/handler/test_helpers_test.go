package handler

import (
	"context"
	"testing"

	"admin-panel-server/internal/modules/settings/repo"
	settingsservice "admin-panel-server/internal/modules/settings/service"
	"admin-panel-server/internal/testutils"

	"github.com/gin-gonic/gin"
)

func setupTestHandler(t *testing.T) (*Handler, repo.LocalCache) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cache := repo.NewDBCache(testutils.SetupDB(t))
	svc := settingsservice.New(context.Background(), cache, settingsservice.Options{
		Themes: []string{"theme-white", "theme-dark"},
	})
	return New(svc), cache
}

func newTestEngine(h *Handler) *gin.Engine {
	r := gin.New()
	r.GET("/api/settings", h.GetSettings)
	r.GET("/api/settings/themes", h.GetThemes)
	r.PUT("/api/admin/settings/theme", h.UpdateTheme)
	r.DELETE("/api/admin/settings/theme", h.ResetTheme)
	return r
}
