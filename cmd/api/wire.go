//go:build wireinject
// +build wireinject

// Wire依赖注入配置，运行 `wire gen ./cmd/api` 生成wire_gen.go

package main

import (
	"github.com/google/wire"

	apppost "github.com/xiebiao/postboard/internal/application/post"
	appuser "github.com/xiebiao/postboard/internal/application/user"
	"github.com/xiebiao/postboard/internal/domain/post"
	"github.com/xiebiao/postboard/internal/domain/user"
	"github.com/xiebiao/postboard/internal/infrastructure/config"
	"github.com/xiebiao/postboard/internal/infrastructure/persistence/gormdb"
	"github.com/xiebiao/postboard/internal/interface/http/handler"
	"github.com/xiebiao/postboard/internal/interface/http/router"
)

// infrastructureSet 基础设施层：配置、日志、数据库
var infrastructureSet = wire.NewSet(
	config.Load,
	provideLogger,
	gormdb.NewDB,
)

// repositorySet 仓储层
var repositorySet = wire.NewSet(
	gormdb.NewUserRepository,
	gormdb.NewPostRepository,
	gormdb.NewPinger,
)

// domainSet 领域层
var domainSet = wire.NewSet(
	user.NewService,
	post.NewService,
)

// applicationSet 应用层
var applicationSet = wire.NewSet(
	appuser.NewCreateUserUseCase,
	appuser.NewUpdateUserUseCase,
	appuser.NewDeleteUserUseCase,
	appuser.NewQueryUsersUseCase,
	apppost.NewQueryPostsUseCase,
)

// handlerSet 接口层
var handlerSet = wire.NewSet(
	handler.NewUserHandler,
	handler.NewPostHandler,
	handler.NewHealthHandler,
	wire.Bind(new(handler.Pinger), new(*gormdb.Pinger)),
	wire.Struct(new(router.Handlers), "*"),
	router.New,
)

// InitializeApp 组装整个应用
// cleanup按依赖逆序关闭数据库连接和日志文件
func InitializeApp() (*App, func(), error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		handlerSet,
		provideHTTPServer,
		NewApp,
	)
	return nil, nil, nil
}
