package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/xiebiao/postboard/docs" // 注册swagger文档
	"github.com/xiebiao/postboard/internal/infrastructure/config"
	"github.com/xiebiao/postboard/internal/interface/http/handler"
	"github.com/xiebiao/postboard/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/postboard/pkg/errors"
	"github.com/xiebiao/postboard/pkg/response"
	"github.com/xiebiao/postboard/pkg/validator"
)

// Handlers 路由依赖的全部处理器
type Handlers struct {
	User   *handler.UserHandler
	Post   *handler.PostHandler
	Health *handler.HealthHandler
}

// New 创建并配置Gin引擎
// 中间件顺序：recovery → tracing → 请求日志 → 指标
func New(cfg *config.Config, log *logrus.Logger, h *Handlers) *gin.Engine {
	switch cfg.Server.Mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	validator.Init()

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(
		middleware.Recovery(log),
		middleware.Tracing(cfg.Tracing.ServiceName),
		middleware.Logger(log),
		middleware.Metrics(),
	)

	r.NoRoute(func(c *gin.Context) {
		response.Message(c, http.StatusNotFound, apperrors.ErrNotFound.Message)
	})
	r.NoMethod(func(c *gin.Context) {
		response.Message(c, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
	})

	// 就绪检查
	r.GET("/ping", h.Health.Ping)

	if cfg.Metrics.Enabled {
		r.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	// Swagger UI：/swagger/index.html
	if cfg.Server.EnableSwagger {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.Server.BasePath)
	{
		api.GET("", h.Health.Hello)
		api.GET("/", h.Health.Hello)

		users := api.Group("/users")
		{
			users.GET("", h.User.List)
			users.GET("/:id", h.User.Get)
			users.POST("/new", h.User.Create)
			users.PUT("/:id", h.User.Update)
			users.DELETE("/:id", h.User.Delete)
		}

		posts := api.Group("/posts")
		{
			posts.GET("", h.Post.List)
			posts.GET("/:id", h.Post.Get)
		}
	}

	return r
}
