package main

import (
	"log"
	"os"
)

// @title           Postboard API
// @version         1.0
// @description     用户与文章的CRUD服务
// @host            localhost:3000
// @BasePath        /
func main() {
	// 1. 组装依赖（配置、日志、数据库、处理器、路由）
	app, cleanup, err := InitializeApp()
	if err != nil {
		log.Fatalf("初始化应用失败: %v", err)
	}

	// 2. 启动服务，阻塞直到收到退出信号
	if err := app.Run(); err != nil {
		app.Logger.WithError(err).Error("服务异常退出")
		cleanup()
		os.Exit(1)
	}

	// 3. 释放数据库连接和日志文件
	cleanup()
}
