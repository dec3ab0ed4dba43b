package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"admin-panel-server/internal/config"
	"admin-panel-server/internal/consts"
	"admin-panel-server/internal/db"
	"admin-panel-server/internal/di"
	"admin-panel-server/internal/logger"
	"admin-panel-server/internal/utils"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func main() {
	configDir := flag.String("config", "config", "配置文件目录")
	exportRoutes := flag.Bool("export", false, "导出路由到 routes.json 并退出")
	tokenSubject := flag.String("token", "", "为指定 subject 签发运维令牌并退出")
	flag.Parse()

	config.InitConfig(*configDir)
	cfg := config.Get()
	if err := logger.Init(cfg.Log); err != nil {
		log.Fatalf("❌ 日志初始化失败: %v", err)
	}

	if *tokenSubject != "" {
		token, err := utils.GenerateOperatorToken(cfg.JWT.Secret, *tokenSubject, true, time.Duration(cfg.JWT.ExpirationHours)*time.Hour)
		if err != nil {
			log.Fatalf("❌ 签发令牌失败: %v", err)
		}
		fmt.Println(token)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gdb, err := db.Open(cfg.Database)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	defer func() { _ = db.Close(gdb) }()

	redisClient := db.OpenRedis(ctx, cfg.Redis)
	defer func() { _ = db.CloseRedis(redisClient) }()

	files, err := GetFrontendAssets(cfg.Frontend.Dir)
	if err != nil {
		log.Fatalf("❌ 前端资源加载失败: %v", err)
	}
	if files == nil {
		log.Warn("⚠️ 未配置前端资源，以纯后端模式运行")
	}

	app, err := di.InitializeApplication(ctx, cfg, gdb, redisClient, files)
	if err != nil {
		log.Fatalf("❌ 应用初始化失败: %v", err)
	}

	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	applyTrustedProxies(r, cfg.Server.TrustedProxies)
	app.Router.Init(r)

	// 导出模式
	if *exportRoutes {
		if err := exportAPI(r, "routes.json"); err != nil {
			log.Fatalf("❌ 路由导出失败: %v", err)
		}
		log.Info("✅ 路由已成功导出到 routes.json")
		return // 导出后直接退出程序，不启动 Web 服务
	}

	printWelcomeMessage(cfg, app.Modules.Settings.Service.ThemeClass(), files != nil)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("🚀 服务启动成功，运行在 :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ 服务启动失败: %s", err)
		}
	}()

	// 等待中断信号关闭服务器（设置 5 秒的超时时间）
	<-ctx.Done()
	log.Info("🛑 正在关闭服务...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("❌ 服务强制关闭: %v", err)
		return
	}
	log.Info("✅ 服务已退出")
}

func printWelcomeMessage(cfg config.Config, themeClass string, frontendEnabled bool) {
	frontendState := "未加载"
	if frontendEnabled {
		frontendState = "已加载"
	}

	fmt.Println()
	fmt.Println(" ┌───────────────────────────────────────────────────────┐")
	fmt.Printf(" │   🚀  %s\n", consts.ApplicationName)
	fmt.Println(" ├───────────────────────────────────────────────────────┤")
	fmt.Printf(" │   📦  后端版本 : %s\n", consts.ApplicationVersion)
	fmt.Printf(" │   💻  前端资源 : %s\n", frontendState)
	fmt.Printf(" │   🎨  当前主题 : %s\n", themeClass)
	fmt.Printf(" │   🗄️  缓存驱动 : %s\n", cfg.Cache.Driver)
	fmt.Printf(" │   🔥  服务端口 : %s\n", cfg.Server.Port)
	fmt.Println(" └───────────────────────────────────────────────────────┘")
	fmt.Println()
}

// RouteInfo 导出的路由信息，只留关键字段
type RouteInfo struct {
	Method  string `json:"method"`
	Path    string `json:"path"`
	Handler string `json:"handler"`
}

func exportAPI(r *gin.Engine, filename string) error {
	routes := r.Routes()
	exportList := make([]RouteInfo, 0, len(routes))
	for _, route := range routes {
		exportList = append(exportList, RouteInfo{
			Method:  route.Method,
			Path:    route.Path,
			Handler: route.Handler,
		})
	}

	data, err := json.MarshalIndent(exportList, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}

func splitTrustedProxyList(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\n' || r == '\t' || r == '\r'
	})
}

// applyTrustedProxies 未配置时不信任任何代理，ClientIP 直接取连接地址
func applyTrustedProxies(r *gin.Engine, raw string) {
	proxies := splitTrustedProxyList(raw)
	if len(proxies) == 0 {
		proxies = nil
	}
	if err := r.SetTrustedProxies(proxies); err != nil {
		log.Warnf("⚠️ 可信代理配置无效，已忽略: %v", err)
		_ = r.SetTrustedProxies(nil)
	}
}

// checkSecurePath 拒绝把项目根目录或其上级目录作为前端资源目录，防止源码与配置泄露
func checkSecurePath(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("路径解析失败: %w", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("无法获取当前工作目录: %w", err)
	}

	rel, err := filepath.Rel(absPath, cwd)
	if err == nil && (rel == "." || !strings.HasPrefix(rel, "..")) {
		return fmt.Errorf("安全配置错误: 前端目录 '%s' 不能是项目根目录或其上级目录", path)
	}

	stat, err := os.Stat(absPath)
	if err != nil {
		return fmt.Errorf("前端目录不可用: %w", err)
	}
	if !stat.IsDir() {
		return fmt.Errorf("前端目录 '%s' 不是目录", path)
	}
	return nil
}
