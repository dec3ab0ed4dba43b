//go:build !embed

package main

import (
	"io/fs"
	"os"
	"strings"
)

// GetFrontendAssets 纯后端模式：未配置 frontend.dir 时返回 nil
// 编译时 不带 tags 就会走这里
func GetFrontendAssets(dir string) (fs.FS, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, nil
	}
	if err := checkSecurePath(dir); err != nil {
		return nil, err
	}
	return os.DirFS(dir), nil
}
