//go:build embed

package main

import (
	"embed"
	"io/fs"
)

//go:embed all:frontend
var embedFS embed.FS

// GetFrontendAssets 返回嵌入的静态资源，忽略 frontend.dir
// 编译时带上 -tags embed 就会走这里
func GetFrontendAssets(_ string) (fs.FS, error) {
	// 获取 embedFS 下的 "frontend" 子目录作为根目录
	return fs.Sub(embedFS, "frontend")
}
