package gormdb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

// gormLogger 把GORM日志输出到logrus
// 实现gorm/logger.Interface
type gormLogger struct {
	log           *logrus.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

// NewLogger 创建GORM日志适配器
// slowThreshold<=0时不记录慢查询
func NewLogger(log *logrus.Logger, level logger.LogLevel, slowThreshold time.Duration) logger.Interface {
	return &gormLogger{
		log:           log,
		level:         level,
		slowThreshold: slowThreshold,
	}
}

// ParseLogLevel 解析database.log_level，未知值按warn处理
func ParseLogLevel(level string) logger.LogLevel {
	switch level {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	nl := *l
	nl.level = level
	return &nl
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= logger.Info {
		l.log.WithContext(ctx).Infof(msg, data...)
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= logger.Warn {
		l.log.WithContext(ctx).Warnf(msg, data...)
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= logger.Error {
		l.log.WithContext(ctx).Errorf(msg, data...)
	}
}

// Trace 记录每条SQL
// 记录不存在、唯一索引冲突属于正常业务分支，不按错误记录
func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	entry := l.log.WithContext(ctx).WithFields(logrus.Fields{
		"sql":     sql,
		"rows":    rows,
		"latency": elapsed.String(),
		"source":  utils.FileWithLineNum(),
	})

	switch {
	case err != nil && l.level >= logger.Error && !isExpectedError(err):
		entry.WithError(err).Error("SQL执行失败")
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		entry.Warn(fmt.Sprintf("慢查询 >= %v", l.slowThreshold))
	case l.level >= logger.Info:
		entry.Info("SQL")
	}
}

func isExpectedError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound) || isDuplicateError(err)
}
