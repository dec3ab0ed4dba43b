package service

import (
	"context"
	"slices"
	"sync"

	"admin-panel-server/internal/consts"
	"admin-panel-server/internal/modules/settings/repo"

	log "github.com/sirupsen/logrus"
)

// Settings 界面偏好快照。
type Settings struct {
	ThemeClass string `json:"theme_class"`
}

// Options 控制主题修改时的校验规则。Themes 为空表示不限制取值。
type Options struct {
	Themes []string
}

// Service 进程级的设置存储：启动时从本地缓存读取一次，之后只在内存中读取。
type Service struct {
	cache  repo.LocalCache
	themes []string

	// writeMu 串行化“写缓存 + 替换内存”，保证两者顺序一致
	writeMu  sync.Mutex
	mu       sync.RWMutex
	settings Settings
	watchers []func(Settings)
}

// New 从缓存读取主题 class 构造设置存储，不会向缓存写入任何内容。
//
// 缓存中没有该键或值为 null 时使用默认主题；其他值（包括空字符串）原样保留。
// 读取或解码失败按“不存在”处理，只记录警告。
func New(ctx context.Context, cache repo.LocalCache, opts Options) *Service {
	s := &Service{
		cache:  cache,
		themes: append([]string(nil), opts.Themes...),
	}
	s.settings.ThemeClass = loadThemeClass(ctx, cache)
	return s
}

func loadThemeClass(ctx context.Context, cache repo.LocalCache) string {
	var themeClass *string
	found, err := cache.GetCache(ctx, consts.CacheKeyThemeClass, &themeClass)
	if err != nil {
		log.WithError(err).Warnf("⚠️ 读取缓存的主题失败，使用默认主题 %s", consts.DefaultThemeClass)
		return consts.DefaultThemeClass
	}
	// null 与缺失等价
	if !found || themeClass == nil {
		return consts.DefaultThemeClass
	}
	return *themeClass
}

// ThemeClass 返回当前主题 class。
func (s *Service) ThemeClass() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.ThemeClass
}

// Settings 返回当前设置的副本。
func (s *Service) Settings() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Themes 返回允许切换的主题列表。
func (s *Service) Themes() []string {
	return append([]string(nil), s.themes...)
}

// OnChange 注册设置变更回调，回调在变更提交后同步调用。
func (s *Service) OnChange(fn func(Settings)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watchers = append(s.watchers, fn)
}

func (s *Service) swap(next Settings) {
	s.mu.Lock()
	s.settings = next
	watchers := slices.Clone(s.watchers)
	s.mu.Unlock()

	for _, fn := range watchers {
		fn(next)
	}
}
