package user

import (
	"context"

	"github.com/xiebiao/postboard/internal/domain/user"
	"github.com/xiebiao/postboard/pkg/tracing"
)

// DeleteUserUseCase 删除用户用例
type DeleteUserUseCase struct {
	userService user.Service
}

// NewDeleteUserUseCase 创建用例
func NewDeleteUserUseCase(userService user.Service) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userService: userService,
	}
}

// Execute 执行删除，重复删除返回ErrUserNotFound
func (uc *DeleteUserUseCase) Execute(ctx context.Context, id uint) (err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "DeleteUserUseCase.Execute")
	defer span.End()
	defer func() { recordMutation("delete", err) }()

	return uc.userService.Delete(ctx, id)
}
