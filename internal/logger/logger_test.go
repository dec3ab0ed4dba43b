package logger

import (
	"os"
	"path/filepath"
	"testing"

	"admin-panel-server/internal/config"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_LevelAndFormat(t *testing.T) {
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetLevel(log.InfoLevel)
		log.SetFormatter(&log.TextFormatter{})
	})

	require.NoError(t, Init(config.LogConfig{Level: "debug", Format: "json"}))
	assert.Equal(t, log.DebugLevel, log.GetLevel())
	_, ok := log.StandardLogger().Formatter.(*log.JSONFormatter)
	assert.True(t, ok)
}

func TestInit_UnknownLevelFallsBackToInfo(t *testing.T) {
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	require.NoError(t, Init(config.LogConfig{Level: "loud"}))
	assert.Equal(t, log.InfoLevel, log.GetLevel())
}

// 测试内容：验证配置日志文件时会创建目录并写入。
func TestInit_WritesToFile(t *testing.T) {
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	fn := filepath.Join(t.TempDir(), "logs", "server.log")
	require.NoError(t, Init(config.LogConfig{Level: "info", File: fn}))

	log.Info("hello")

	data, err := os.ReadFile(fn)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}
