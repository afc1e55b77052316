package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/xiebiao/postboard/internal/infrastructure/config"
	"github.com/xiebiao/postboard/pkg/logger"
	"github.com/xiebiao/postboard/pkg/metrics"
)

// provideLogger 从配置创建logrus日志，cleanup关闭日志文件
func provideLogger(cfg *config.Config) (*logrus.Logger, func(), error) {
	return logger.New(logger.Options{
		Level:        cfg.Log.Level,
		Format:       cfg.Log.Format,
		Output:       cfg.Log.Output,
		EnableCaller: cfg.Log.EnableCaller,
	})
}

// provideHTTPServer 创建HTTP服务
// 指标在这里注册，保证/metrics挂载前已初始化
func provideHTTPServer(cfg *config.Config, engine *gin.Engine) *http.Server {
	if cfg.Metrics.Enabled {
		metrics.InitMetrics()
	}

	return &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}
