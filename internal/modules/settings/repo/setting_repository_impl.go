package repo

import (
	"context"
	"errors"
	"fmt"

	"admin-panel-server/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DBCache 基于数据库表 cache_entries 的缓存实现。
type DBCache struct {
	db *gorm.DB
}

// "key" 在 MySQL 中是保留字，统一使用 clause 让方言负责引用
func keyEquals(key string) clause.Expression {
	return clause.Eq{Column: clause.Column{Name: "key"}, Value: key}
}

func (r *DBCache) GetCache(ctx context.Context, key string, dst any) (bool, error) {
	var entry model.CacheEntry
	err := r.db.WithContext(ctx).Where(keyEquals(key)).Take(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("find cache entry %q failed: %w", key, err)
	}
	if err := decodeValue(key, entry.Value, dst); err != nil {
		return false, err
	}
	return true, nil
}

func (r *DBCache) SetCache(ctx context.Context, key string, value any) error {
	raw, err := encodeValue(key, value)
	if err != nil {
		return err
	}
	entry := model.CacheEntry{Key: key, Value: raw}
	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("save cache entry %q failed: %w", key, err)
	}
	return nil
}

func (r *DBCache) DeleteCache(ctx context.Context, key string) error {
	if err := r.db.WithContext(ctx).Where(keyEquals(key)).Delete(&model.CacheEntry{}).Error; err != nil {
		return fmt.Errorf("delete cache entry %q failed: %w", key, err)
	}
	return nil
}

func (r *DBCache) ClearCache(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Where("1 = 1").Delete(&model.CacheEntry{}).Error; err != nil {
		return fmt.Errorf("clear cache entries failed: %w", err)
	}
	return nil
}
