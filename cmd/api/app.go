package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/xiebiao/postboard/internal/infrastructure/config"
	"github.com/xiebiao/postboard/pkg/tracing"
)

// App 应用实例
type App struct {
	Config *config.Config
	Logger *logrus.Logger
	Server *http.Server
}

// NewApp 创建应用实例
func NewApp(cfg *config.Config, log *logrus.Logger, srv *http.Server) *App {
	return &App{
		Config: cfg,
		Logger: log,
		Server: srv,
	}
}

// Run 启动HTTP服务并阻塞，收到SIGINT/SIGTERM后优雅关闭
func (a *App) Run() error {
	// 1. 初始化追踪（未启用时为no-op）
	shutdownTracer, err := tracing.InitTracer(tracing.Options{
		Enabled:     a.Config.Tracing.Enabled,
		ServiceName: a.Config.Tracing.ServiceName,
		Endpoint:    a.Config.Tracing.Endpoint,
		Insecure:    a.Config.Tracing.Insecure,
		SampleRatio: a.Config.Tracing.SampleRatio,
	})
	if err != nil {
		return fmt.Errorf("初始化追踪失败: %w", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			a.Logger.WithError(err).Warn("关闭追踪失败")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 2. 启动服务
	errCh := make(chan error, 1)
	go func() {
		a.Logger.WithFields(logrus.Fields{
			"addr":      a.Server.Addr,
			"mode":      a.Config.Server.Mode,
			"base_path": a.Config.Server.BasePath,
			"driver":    a.Config.Database.Driver,
		}).Info("服务启动")

		if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// 3. 等待退出信号或启动失败
	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("启动服务失败: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	// 4. 优雅关闭：停止接收新请求，等待处理中的请求完成
	a.Logger.Info("正在关闭服务...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.Server.ShutdownTimeout)
	defer cancel()

	if err := a.Server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("关闭服务失败: %w", err)
	}

	a.Logger.Info("服务已关闭")
	return nil
}
