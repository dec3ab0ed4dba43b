package repo

import (
	"context"
	"errors"
	"fmt"

	"admin-panel-server/internal/db"

	"github.com/redis/go-redis/v9"
)

const redisScanCount = 100

// RedisCache 基于 Redis 的缓存实现，键名为 <prefix>:cache:<key>，不设过期。
type RedisCache struct {
	client *redis.Client
	prefix string
}

func (r *RedisCache) key(key string) string {
	return db.RedisKey(r.prefix, "cache", key)
}

func (r *RedisCache) GetCache(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := r.client.Get(ctx, r.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get %q failed: %w", key, err)
	}
	if err := decodeValue(key, raw, dst); err != nil {
		return false, err
	}
	return true, nil
}

func (r *RedisCache) SetCache(ctx context.Context, key string, value any) error {
	raw, err := encodeValue(key, value)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.key(key), raw, 0).Err(); err != nil {
		return fmt.Errorf("redis set %q failed: %w", key, err)
	}
	return nil
}

func (r *RedisCache) DeleteCache(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("redis del %q failed: %w", key, err)
	}
	return nil
}

// ClearCache 仅清理本缓存前缀下的键，不影响同库中的其他数据。
func (r *RedisCache) ClearCache(ctx context.Context) error {
	pattern := r.key("*")
	var cursor uint64
	for {
		keys, next, err := r.client.Scan(ctx, cursor, pattern, redisScanCount).Result()
		if err != nil {
			return fmt.Errorf("redis scan %q failed: %w", pattern, err)
		}
		if len(keys) > 0 {
			if err := r.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("redis del failed: %w", err)
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}
