package repo

import (
	"context"
	"sync"
)

// MemoryCache 进程内缓存，仅在未配置持久化后端或测试时使用。
type MemoryCache struct {
	entries sync.Map // key -> JSON string
}

func (m *MemoryCache) GetCache(_ context.Context, key string, dst any) (bool, error) {
	val, ok := m.entries.Load(key)
	if !ok {
		return false, nil
	}
	raw, ok := val.(string)
	if !ok {
		m.entries.Delete(key)
		return false, nil
	}
	if err := decodeValue(key, raw, dst); err != nil {
		return false, err
	}
	return true, nil
}

func (m *MemoryCache) SetCache(_ context.Context, key string, value any) error {
	raw, err := encodeValue(key, value)
	if err != nil {
		return err
	}
	m.entries.Store(key, raw)
	return nil
}

func (m *MemoryCache) DeleteCache(_ context.Context, key string) error {
	m.entries.Delete(key)
	return nil
}

func (m *MemoryCache) ClearCache(_ context.Context) error {
	m.entries.Range(func(key, _ any) bool {
		m.entries.Delete(key)
		return true
	})
	return nil
}
