// Package logger 基于logrus构建进程级日志器
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Options 日志配置
type Options struct {
	Level        string // debug | info | warn | error
	Format       string // text | json
	Output       string // stdout | stderr | /path/to/file
	EnableCaller bool

	// Writer 非空时优先于Output（测试中写入缓冲区）
	Writer io.Writer
}

// New 创建日志器
// 返回的cleanup在Output为文件时负责关闭文件
func New(opts Options) (*logrus.Logger, func(), error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}

	out, cleanup, err := openOutput(opts)
	if err != nil {
		return nil, nil, err
	}

	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(level)
	log.SetReportCaller(opts.EnableCaller)

	switch strings.ToLower(opts.Format) {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	case "", "text", "console":
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05.000",
		})
	default:
		cleanup()
		return nil, nil, fmt.Errorf("不支持的日志格式: %s", opts.Format)
	}

	return log, cleanup, nil
}

// ParseLevel 解析日志级别，空字符串视为info
func ParseLevel(level string) (logrus.Level, error) {
	if level == "" {
		return logrus.InfoLevel, nil
	}
	lv, err := logrus.ParseLevel(level)
	if err != nil {
		return 0, fmt.Errorf("无效的日志级别: %s", level)
	}
	return lv, nil
}

func openOutput(opts Options) (io.Writer, func(), error) {
	noop := func() {}

	if opts.Writer != nil {
		return opts.Writer, noop, nil
	}

	switch opts.Output {
	case "", "stdout":
		return os.Stdout, noop, nil
	case "stderr":
		return os.Stderr, noop, nil
	}

	f, err := os.OpenFile(opts.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("打开日志文件失败: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
