package modules

import (
	"context"

	"admin-panel-server/internal/config"
	"admin-panel-server/internal/modules/settings"
	settingsrepo "admin-panel-server/internal/modules/settings/repo"
)

type AppModules struct {
	Settings *settings.Module
}

func New(ctx context.Context, cfg config.Config, cache settingsrepo.LocalCache) *AppModules {
	return &AppModules{
		Settings: settings.New(ctx, cfg, cache),
	}
}
