package service

import (
	"context"
	"regexp"
	"slices"
	"strings"

	"admin-panel-server/internal/consts"
	platformservice "admin-panel-server/internal/platform/service"

	log "github.com/sirupsen/logrus"
)

// 与 CSS class 选择器兼容的标识
var themeClassPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// UpdateThemeClass 校验并切换主题：先写缓存，成功后再替换内存中的值。
func (s *Service) UpdateThemeClass(ctx context.Context, themeClass string) (Settings, error) {
	themeClass = strings.TrimSpace(themeClass)
	if err := s.validateThemeClass(themeClass); err != nil {
		return s.Settings(), err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.cache.SetCache(ctx, consts.CacheKeyThemeClass, themeClass); err != nil {
		return s.Settings(), platformservice.NewInternalError("保存主题失败", err)
	}

	next := Settings{ThemeClass: themeClass}
	s.swap(next)
	log.WithField("theme_class", themeClass).Info("主题已更新")
	return next, nil
}

// ResetThemeClass 删除缓存中的主题并恢复默认主题。
func (s *Service) ResetThemeClass(ctx context.Context) (Settings, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.cache.DeleteCache(ctx, consts.CacheKeyThemeClass); err != nil {
		return s.Settings(), platformservice.NewInternalError("重置主题失败", err)
	}

	next := Settings{ThemeClass: consts.DefaultThemeClass}
	s.swap(next)
	log.Info("主题已重置为默认值")
	return next, nil
}

func (s *Service) validateThemeClass(themeClass string) error {
	if themeClass == "" {
		return platformservice.NewValidationError("主题不能为空")
	}
	if !themeClassPattern.MatchString(themeClass) {
		return platformservice.NewValidationError("主题只能包含字母、数字、下划线和连字符，且必须以字母开头")
	}
	if len(s.themes) > 0 && !slices.Contains(s.themes, themeClass) {
		return platformservice.NewValidationError("不支持的主题: " + themeClass)
	}
	return nil
}
