package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"admin-panel-server/internal/config"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

const defaultRedisPrefix = "admin_panel"

// OpenRedis 建立 Redis 连接；当未启用或不可用时返回 nil，调用方降级处理。
func OpenRedis(ctx context.Context, cfg config.RedisConfig) *redis.Client {
	if !cfg.Enabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		log.Warnf("⚠️ Redis 不可用，降级为数据库缓存: %v", err)
		return nil
	}

	log.Infof("✅ Redis 已连接: %s (db=%d)", cfg.Addr, cfg.DB)
	return client
}

// CloseRedis 关闭 Redis 客户端连接。
func CloseRedis(client *redis.Client) error {
	if client == nil {
		return nil
	}
	if err := client.Close(); err != nil {
		return fmt.Errorf("close redis failed: %w", err)
	}
	return nil
}

// RedisKey 基于前缀拼接 Redis 键名。
func RedisKey(prefix string, parts ...string) string {
	if prefix == "" {
		prefix = defaultRedisPrefix
	}
	if len(parts) == 0 {
		return prefix
	}
	return prefix + ":" + strings.Join(parts, ":")
}
