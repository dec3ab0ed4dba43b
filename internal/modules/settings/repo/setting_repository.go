package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidCacheValue 表示缓存中存在的值无法解码。
var ErrInvalidCacheValue = errors.New("invalid cache value")

// LocalCache 持久化的键值缓存，值以 JSON 编码保存。
//
// GetCache 在键不存在时返回 (false, nil)；存储的 JSON "" 或 0 同样视为存在。
// DeleteCache 删除不存在的键不报错。
type LocalCache interface {
	GetCache(ctx context.Context, key string, dst any) (bool, error)
	SetCache(ctx context.Context, key string, value any) error
	DeleteCache(ctx context.Context, key string) error
	ClearCache(ctx context.Context) error
}

func encodeValue(key string, value any) (string, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("encode cache value %q failed: %w", key, err)
	}
	return string(data), nil
}

func decodeValue(key string, raw string, dst any) error {
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("decode cache value %q failed: %w: %w", key, ErrInvalidCacheValue, err)
	}
	return nil
}
