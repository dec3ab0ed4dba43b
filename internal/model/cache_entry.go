package model

import "time"

// CacheEntry 本地持久化缓存中的一条记录，Value 为 JSON 编码后的文本。
type CacheEntry struct {
	Key       string    `json:"key" gorm:"primaryKey;size:191"`
	Value     string    `json:"value" gorm:"type:text;not null"`
	UpdatedAt time.Time `json:"updated_at"`
}
