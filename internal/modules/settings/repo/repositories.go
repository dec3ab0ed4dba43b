package repo

import (
	"admin-panel-server/internal/config"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	DriverDatabase = "database"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)

func NewDBCache(db *gorm.DB) *DBCache {
	return &DBCache{db: db}
}

func NewRedisCache(client *redis.Client, prefix string) *RedisCache {
	return &RedisCache{client: client, prefix: prefix}
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{}
}

// NewLocalCache 按驱动名选择缓存后端。
// redis 不可用时降级为数据库；没有数据库时降级为内存。
func NewLocalCache(cfg config.Config, gdb *gorm.DB, redisClient *redis.Client) LocalCache {
	driver := cfg.Cache.Driver
	if driver == DriverRedis {
		if redisClient != nil {
			return NewRedisCache(redisClient, cfg.Redis.Prefix)
		}
		log.Warn("⚠️ 缓存驱动为 redis 但 Redis 不可用，降级为数据库缓存")
		driver = DriverDatabase
	}
	if driver == DriverMemory {
		return NewMemoryCache()
	}
	if driver != DriverDatabase && driver != "" {
		log.Warnf("⚠️ 未知的缓存驱动 %q，使用数据库缓存", driver)
	}
	if gdb == nil {
		log.Warn("⚠️ 数据库不可用，缓存降级为内存模式，重启后设置将丢失")
		return NewMemoryCache()
	}
	return NewDBCache(gdb)
}
