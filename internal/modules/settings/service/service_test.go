package service

import (
	"context"
	"sync"
	"testing"

	"admin-panel-server/internal/consts"
	"admin-panel-server/internal/model"
	"admin-panel-server/internal/modules/settings/repo"
	platformservice "admin-panel-server/internal/platform/service"
	"admin-panel-server/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testThemes = Options{Themes: []string{"theme-white", "theme-dark"}}

func assertErrorCode(t *testing.T, err error, code platformservice.ErrorCode) {
	t.Helper()
	serviceErr, ok := platformservice.AsServiceError(err)
	require.True(t, ok, "期望 ServiceError，实际为: %v", err)
	assert.Equal(t, code, serviceErr.Code)
}

// 测试内容：缓存中没有主题时使用默认主题。
func TestNew_DefaultFallback(t *testing.T) {
	svc := New(context.Background(), repo.NewMemoryCache(), testThemes)
	assert.Equal(t, "theme-white", svc.ThemeClass())
}

// 测试内容：缓存中已有的主题被原样采用。
func TestNew_SeededValueRespected(t *testing.T) {
	ctx := context.Background()
	cache := repo.NewMemoryCache()
	require.NoError(t, cache.SetCache(ctx, consts.CacheKeyThemeClass, "theme-dark"))

	svc := New(ctx, cache, testThemes)
	assert.Equal(t, "theme-dark", svc.ThemeClass())
}

// 测试内容：存在但为空字符串的值不会被默认值替换。
func TestNew_EmptyStringIsPreserved(t *testing.T) {
	ctx := context.Background()
	cache := repo.NewMemoryCache()
	require.NoError(t, cache.SetCache(ctx, consts.CacheKeyThemeClass, ""))

	svc := New(ctx, cache, testThemes)
	assert.Equal(t, "", svc.ThemeClass())
}

// 测试内容：缓存中存的是 null 时与缺失等价，使用默认主题。
func TestNew_NullValueFallsBack(t *testing.T) {
	ctx := context.Background()

	cache := repo.NewMemoryCache()
	require.NoError(t, cache.SetCache(ctx, consts.CacheKeyThemeClass, nil))
	assert.Equal(t, consts.DefaultThemeClass, New(ctx, cache, testThemes).ThemeClass())

	gdb := testutils.SetupDB(t)
	require.NoError(t, gdb.Create(&model.CacheEntry{Key: consts.CacheKeyThemeClass, Value: "null"}).Error)
	assert.Equal(t, consts.DefaultThemeClass, New(ctx, repo.NewDBCache(gdb), testThemes).ThemeClass())
}

// 测试内容：多次读取返回同一值，且不会重新读取缓存。
func TestThemeClass_ReadsCacheOnce(t *testing.T) {
	ctx := context.Background()
	inner := repo.NewMemoryCache()
	require.NoError(t, inner.SetCache(ctx, consts.CacheKeyThemeClass, "theme-dark"))
	spy := newSpyCache(inner)

	svc := New(ctx, spy, testThemes)
	first := svc.ThemeClass()

	// 绕过设置存储直接改写缓存，内存中的值不应变化
	require.NoError(t, inner.SetCache(ctx, consts.CacheKeyThemeClass, "theme-white"))
	second := svc.ThemeClass()

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), spy.gets.Load())
}

// 测试内容：初始化只读缓存，不写回任何值。
func TestNew_DoesNotWriteCache(t *testing.T) {
	ctx := context.Background()
	spy := newSpyCache(repo.NewMemoryCache())

	New(ctx, spy, testThemes)

	assert.Equal(t, int32(0), spy.writes.Load())
	var got string
	found, err := spy.LocalCache.GetCache(ctx, consts.CacheKeyThemeClass, &got)
	require.NoError(t, err)
	assert.False(t, found)
}

// 测试内容：缓存读取失败或值无法解码时按不存在处理。
func TestNew_UnreadableValueFallsBack(t *testing.T) {
	ctx := context.Background()

	spy := newSpyCache(repo.NewMemoryCache())
	spy.getErr = errBackendDown
	assert.Equal(t, consts.DefaultThemeClass, New(ctx, spy, testThemes).ThemeClass())

	gdb := testutils.SetupDB(t)
	require.NoError(t, gdb.Create(&model.CacheEntry{Key: consts.CacheKeyThemeClass, Value: "theme-dark"}).Error) // 不是合法 JSON
	assert.Equal(t, consts.DefaultThemeClass, New(ctx, repo.NewDBCache(gdb), testThemes).ThemeClass())

	cache := repo.NewMemoryCache()
	require.NoError(t, cache.SetCache(ctx, consts.CacheKeyThemeClass, 42)) // 类型不符
	assert.Equal(t, consts.DefaultThemeClass, New(ctx, cache, testThemes).ThemeClass())
}

// 测试内容：切换主题会写回缓存，重新构造的存储能读到新值。
func TestUpdateThemeClass_PersistsAcrossRestart(t *testing.T) {
	ctx := context.Background()
	cache := repo.NewDBCache(testutils.SetupDB(t))

	svc := New(ctx, cache, testThemes)
	got, err := svc.UpdateThemeClass(ctx, "  theme-dark ")
	require.NoError(t, err)
	assert.Equal(t, "theme-dark", got.ThemeClass)
	assert.Equal(t, "theme-dark", svc.ThemeClass())

	restarted := New(ctx, cache, testThemes)
	assert.Equal(t, "theme-dark", restarted.ThemeClass())
}

// 测试内容：非法主题被拒绝，内存与缓存均保持不变。
func TestUpdateThemeClass_RejectsInvalid(t *testing.T) {
	ctx := context.Background()
	spy := newSpyCache(repo.NewMemoryCache())
	svc := New(ctx, spy, testThemes)

	for _, value := range []string{"", "   ", "1theme", "theme dark", "theme<script>", "theme-ocean"} {
		_, err := svc.UpdateThemeClass(ctx, value)
		assertErrorCode(t, err, platformservice.ErrorCodeValidation)
	}

	assert.Equal(t, consts.DefaultThemeClass, svc.ThemeClass())
	assert.Equal(t, int32(0), spy.writes.Load())
}

// 测试内容：未配置主题白名单时接受任意合法 class。
func TestUpdateThemeClass_NoAllowList(t *testing.T) {
	ctx := context.Background()
	svc := New(ctx, repo.NewMemoryCache(), Options{})

	_, err := svc.UpdateThemeClass(ctx, "theme-ocean")
	require.NoError(t, err)
	assert.Equal(t, "theme-ocean", svc.ThemeClass())
	assert.Empty(t, svc.Themes())
}

// 测试内容：写缓存失败时返回内部错误且内存值不变。
func TestUpdateThemeClass_CacheFailureKeepsMemory(t *testing.T) {
	ctx := context.Background()
	spy := newSpyCache(repo.NewMemoryCache())
	svc := New(ctx, spy, testThemes)
	spy.saveErr = errBackendDown

	current, err := svc.UpdateThemeClass(ctx, "theme-dark")
	assertErrorCode(t, err, platformservice.ErrorCodeInternal)
	assert.ErrorIs(t, err, errBackendDown)
	assert.Equal(t, consts.DefaultThemeClass, current.ThemeClass)
	assert.Equal(t, consts.DefaultThemeClass, svc.ThemeClass())

	_, err = svc.ResetThemeClass(ctx)
	assertErrorCode(t, err, platformservice.ErrorCodeInternal)
}

// 测试内容：重置会删除缓存并恢复默认主题。
func TestResetThemeClass(t *testing.T) {
	ctx := context.Background()
	cache := repo.NewMemoryCache()
	require.NoError(t, cache.SetCache(ctx, consts.CacheKeyThemeClass, "theme-dark"))
	svc := New(ctx, cache, testThemes)

	got, err := svc.ResetThemeClass(ctx)
	require.NoError(t, err)
	assert.Equal(t, consts.DefaultThemeClass, got.ThemeClass)
	assert.Equal(t, consts.DefaultThemeClass, svc.ThemeClass())

	var stored string
	found, err := cache.GetCache(ctx, consts.CacheKeyThemeClass, &stored)
	require.NoError(t, err)
	assert.False(t, found)
}

// 测试内容：变更回调收到提交后的设置。
func TestOnChange_NotifiesAfterCommit(t *testing.T) {
	ctx := context.Background()
	svc := New(ctx, repo.NewMemoryCache(), testThemes)

	var seen []string
	svc.OnChange(func(s Settings) {
		assert.Equal(t, s.ThemeClass, svc.ThemeClass())
		seen = append(seen, s.ThemeClass)
	})

	_, err := svc.UpdateThemeClass(ctx, "theme-dark")
	require.NoError(t, err)
	_, err = svc.ResetThemeClass(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"theme-dark", "theme-white"}, seen)
}

// 测试内容：并发读写时内存值最终与缓存一致。
func TestUpdateThemeClass_ConcurrentKeepsCacheAndMemoryInSync(t *testing.T) {
	ctx := context.Background()
	cache := repo.NewMemoryCache()
	svc := New(ctx, cache, testThemes)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		theme := testThemes.Themes[i%2]
		go func() {
			defer wg.Done()
			_, _ = svc.UpdateThemeClass(ctx, theme)
		}()
		go func() {
			defer wg.Done()
			_ = svc.ThemeClass()
		}()
	}
	wg.Wait()

	var stored string
	found, err := cache.GetCache(ctx, consts.CacheKeyThemeClass, &stored)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, stored, svc.ThemeClass())
}
