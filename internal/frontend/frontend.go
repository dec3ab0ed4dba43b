// Package frontend 负责托管打包后的管理后台 SPA。
package frontend

import (
	"bytes"
	"fmt"
	"io/fs"
	"mime"
	"net/http"
	"path"
	"slices"
	"strconv"
	"strings"
	"sync"

	"admin-panel-server/internal/modules/common/httpx"
	"admin-panel-server/internal/platform/service"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const indexFile = "index.html"

// ThemeSource 提供当前主题 class。
type ThemeSource interface {
	ThemeClass() string
}

// Server 托管 SPA 静态资源，并在 index.html 的根元素上注入当前主题。
type Server struct {
	files        fs.FS
	theme        ThemeSource
	cacheControl string

	mu          sync.Mutex
	indexRaw    []byte
	rendered    []byte
	renderedFor string
}

// New 创建前端服务；files 为 nil 表示纯后端模式。
func New(files fs.FS, theme ThemeSource, cacheControl string) (*Server, error) {
	s := &Server{files: files, theme: theme, cacheControl: cacheControl}
	if files == nil {
		return s, nil
	}
	indexRaw, err := fs.ReadFile(files, indexFile)
	if err != nil {
		return nil, fmt.Errorf("无法读取 %s: %w", indexFile, err)
	}
	s.indexRaw = indexRaw
	return s, nil
}

// Enabled 表示是否有可托管的前端资源。
func (s *Server) Enabled() bool {
	return s.files != nil
}

// Invalidate 丢弃已渲染的 index.html，下一次请求时重新渲染。
func (s *Server) Invalidate() {
	s.mu.Lock()
	s.rendered = nil
	s.renderedFor = ""
	s.mu.Unlock()
}

// Index 返回注入了当前主题的 index.html，同一主题只渲染一次。
func (s *Server) Index() ([]byte, error) {
	themeClass := s.theme.ThemeClass()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rendered != nil && s.renderedFor == themeClass {
		return s.rendered, nil
	}
	out, err := InjectThemeClass(s.indexRaw, themeClass)
	if err != nil {
		return nil, err
	}
	s.rendered = out
	s.renderedFor = themeClass
	return out, nil
}

// InjectThemeClass 把主题 class 追加到 <html> 元素上，保留原有 class。
func InjectThemeClass(index []byte, themeClass string) ([]byte, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(index))
	if err != nil {
		return nil, fmt.Errorf("解析 index.html 失败: %w", err)
	}
	if themeClass != "" {
		root := doc.Find("html")
		existing, _ := root.Attr("class")
		classes := strings.Fields(existing)
		if !slices.Contains(classes, themeClass) {
			classes = append(classes, themeClass)
		}
		root.SetAttr("class", strings.Join(classes, " "))
	}
	out, err := goquery.OuterHtml(doc.Selection)
	if err != nil {
		return nil, fmt.Errorf("渲染 index.html 失败: %w", err)
	}
	return []byte(out), nil
}

// ServeAsset 托管 /assets 下的构建产物，客户端支持 gzip 时优先返回预压缩文件。
func (s *Server) ServeAsset(c *gin.Context) {
	name := strings.TrimPrefix(path.Clean("/"+c.Param("filepath")), "/")
	s.serveFile(c, path.Join("assets", name))
}

// NoRoute 处理未匹配的路由：API 返回 404，其余走 SPA 回退。
func (s *Server) NoRoute(c *gin.Context) {
	if isAPIPath(c.Request.URL.Path) {
		httpx.WriteServiceError(c, service.NewNotFoundError("API not found"), "")
		return
	}
	if !s.Enabled() {
		httpx.WriteServiceError(c, service.NewNotFoundError("Not found"), "")
		return
	}
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
		return
	}

	// 尝试直接服务根目录下的静态文件 (如 favicon.ico, manifest.json)
	name := strings.TrimPrefix(path.Clean(c.Request.URL.Path), "/")
	if name != "" && name != indexFile && s.isFile(name) {
		s.serveFile(c, name)
		return
	}

	// SPA 回退：服务注入主题后的 index.html
	s.serveIndex(c)
}

func (s *Server) serveIndex(c *gin.Context) {
	data, err := s.Index()
	if err != nil {
		log.WithError(err).Error("渲染 index.html 失败")
		data = s.indexRaw
	}
	c.Header("Cache-Control", "no-cache")
	c.Data(http.StatusOK, "text/html; charset=utf-8", data)
}

func (s *Server) serveFile(c *gin.Context, name string) {
	if !s.Enabled() || !s.isFile(name) {
		httpx.WriteServiceError(c, service.NewNotFoundError("Not found"), "")
		return
	}

	if s.cacheControl != "" {
		c.Header("Cache-Control", s.cacheControl)
	}
	c.Header("Vary", "Accept-Encoding")

	if acceptsGzip(c.GetHeader("Accept-Encoding")) && s.isFile(name+".gz") {
		data, err := fs.ReadFile(s.files, name+".gz")
		if err == nil {
			c.Header("Content-Encoding", "gzip")
			c.Data(http.StatusOK, contentType(name), data)
			return
		}
	}

	c.FileFromFS(name, http.FS(s.files))
}

func (s *Server) isFile(name string) bool {
	stat, err := fs.Stat(s.files, name)
	return err == nil && !stat.IsDir()
}

func isAPIPath(p string) bool {
	return p == "/api" || strings.HasPrefix(p, "/api/")
}

// acceptsGzip q 值为 0 (含 0.0、0.000) 表示明确拒绝
func acceptsGzip(header string) bool {
	for _, part := range strings.Split(header, ",") {
		coding, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		if !strings.EqualFold(strings.TrimSpace(coding), "gzip") {
			continue
		}
		for _, param := range strings.Split(params, ";") {
			name, value, ok := strings.Cut(strings.TrimSpace(param), "=")
			if !ok || !strings.EqualFold(strings.TrimSpace(name), "q") {
				continue
			}
			q, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
			if err != nil || q <= 0 {
				return false
			}
		}
		return true
	}
	return false
}

func contentType(name string) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
