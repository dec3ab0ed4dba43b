package di

import (
	"io/fs"

	"admin-panel-server/internal/config"
	"admin-panel-server/internal/frontend"
	"admin-panel-server/internal/modules"
	settingsservice "admin-panel-server/internal/modules/settings/service"
	"admin-panel-server/internal/router"
)

type Application struct {
	Router  *router.Router
	Modules *modules.AppModules
}

func NewApplication(r *router.Router, m *modules.AppModules) *Application {
	return &Application{
		Router:  r,
		Modules: m,
	}
}

// NewFrontend 创建 SPA 服务，并在主题变更时丢弃已渲染的 index.html。
func NewFrontend(files fs.FS, m *modules.AppModules, cfg config.Config) (*frontend.Server, error) {
	server, err := frontend.New(files, m.Settings.Service, cfg.Frontend.StaticCacheControl)
	if err != nil {
		return nil, err
	}
	m.Settings.Service.OnChange(func(settingsservice.Settings) {
		server.Invalidate()
	})
	return server, nil
}
