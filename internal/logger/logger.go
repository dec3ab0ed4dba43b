package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"admin-panel-server/internal/config"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Init 按配置设置全局 logrus：日志级别、输出格式，以及可选的滚动日志文件。
func Init(cfg config.LogConfig) error {
	level, err := log.ParseLevel(strings.TrimSpace(cfg.Level))
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if strings.EqualFold(cfg.Format, "json") {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	out, err := output(cfg.File)
	if err != nil {
		return err
	}
	log.SetOutput(out)
	return nil
}

func output(file string) (io.Writer, error) {
	file = strings.TrimSpace(file)
	if file == "" {
		return os.Stdout, nil
	}
	if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
		return nil, err
	}
	return &lumberjack.Logger{
		Filename:   file,
		MaxSize:    50, // megabytes
		MaxBackups: 3,
	}, nil
}
