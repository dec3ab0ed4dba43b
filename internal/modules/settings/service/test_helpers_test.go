package service

import (
	"context"
	"errors"
	"sync/atomic"

	"admin-panel-server/internal/modules/settings/repo"
)

// spyCache 包装真实缓存并统计调用次数，可注入读写错误。
type spyCache struct {
	repo.LocalCache
	gets    atomic.Int32
	writes  atomic.Int32
	getErr  error
	saveErr error
}

func newSpyCache(inner repo.LocalCache) *spyCache {
	return &spyCache{LocalCache: inner}
}

func (s *spyCache) GetCache(ctx context.Context, key string, dst any) (bool, error) {
	s.gets.Add(1)
	if s.getErr != nil {
		return false, s.getErr
	}
	return s.LocalCache.GetCache(ctx, key, dst)
}

func (s *spyCache) SetCache(ctx context.Context, key string, value any) error {
	s.writes.Add(1)
	if s.saveErr != nil {
		return s.saveErr
	}
	return s.LocalCache.SetCache(ctx, key, value)
}

func (s *spyCache) DeleteCache(ctx context.Context, key string) error {
	s.writes.Add(1)
	if s.saveErr != nil {
		return s.saveErr
	}
	return s.LocalCache.DeleteCache(ctx, key)
}

func (s *spyCache) ClearCache(ctx context.Context) error {
	s.writes.Add(1)
	return s.LocalCache.ClearCache(ctx)
}

var errBackendDown = errors.New("backend down")
