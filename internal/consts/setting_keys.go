package consts

const (

	// CacheKeyThemeClass 本地缓存中保存界面主题 class 的键
	CacheKeyThemeClass = "theme_class"

	// DefaultThemeClass 缓存中没有主题时使用的默认值
	DefaultThemeClass = "theme-white"
)
