package settings

import (
	"context"

	"admin-panel-server/internal/config"
	"admin-panel-server/internal/modules/settings/handler"
	"admin-panel-server/internal/modules/settings/repo"
	"admin-panel-server/internal/modules/settings/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(ctx context.Context, cfg config.Config, cache repo.LocalCache) *Module {
	moduleService := service.New(ctx, cache, service.Options{Themes: cfg.UI.Themes})
	moduleHandler := handler.New(moduleService)

	return &Module{
		Service: moduleService,
		Handler: moduleHandler,
	}
}
