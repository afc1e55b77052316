package user

import (
	"context"

	"github.com/xiebiao/postboard/internal/domain/user"
	"github.com/xiebiao/postboard/pkg/tracing"
)

const tracerName = "postboard/application/user"

// CreateUserUseCase 创建用户用例
type CreateUserUseCase struct {
	userService user.Service
}

// NewCreateUserUseCase 创建用例
func NewCreateUserUseCase(userService user.Service) *CreateUserUseCase {
	return &CreateUserUseCase{
		userService: userService,
	}
}

// Execute 执行创建
func (uc *CreateUserUseCase) Execute(ctx context.Context, req CreateUserRequest) (_ *UserDTO, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "CreateUserUseCase.Execute")
	defer span.End()
	defer func() { recordMutation("create", err) }()

	// 1. 调用领域服务（邮箱冲突返回ErrEmailTaken）
	u, err := uc.userService.Create(ctx, req.Name, req.Email)
	if err != nil {
		return nil, err
	}

	// 2. 领域实体 → 应用层DTO
	return toDTO(u), nil
}
