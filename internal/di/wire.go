//go:build wireinject
// +build wireinject

package di

import (
	"context"
	"io/fs"

	"admin-panel-server/internal/config"
	"admin-panel-server/internal/modules"
	settingsrepo "admin-panel-server/internal/modules/settings/repo"
	"admin-panel-server/internal/router"

	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func InitializeApplication(ctx context.Context, cfg config.Config, gormDB *gorm.DB, redisClient *redis.Client, files fs.FS) (*Application, error) {
	wire.Build(
		settingsrepo.NewLocalCache,
		modules.New,
		NewFrontend,
		router.NewRouter,
		NewApplication,
	)
	return nil, nil
}
