package user

import (
	"context"

	"github.com/xiebiao/postboard/internal/domain/user"
	"github.com/xiebiao/postboard/pkg/tracing"
)

// UpdateUserUseCase 更新用户用例
type UpdateUserUseCase struct {
	userService user.Service
}

// NewUpdateUserUseCase 创建用例
func NewUpdateUserUseCase(userService user.Service) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userService: userService,
	}
}

// Execute 执行更新
// 用户不存在返回ErrUserNotFound，邮箱被其他用户占用返回ErrEmailTaken
func (uc *UpdateUserUseCase) Execute(ctx context.Context, req UpdateUserRequest) (_ *UserDTO, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "UpdateUserUseCase.Execute")
	defer span.End()
	defer func() { recordMutation("update", err) }()

	u, err := uc.userService.Update(ctx, req.ID, req.Name, req.Email)
	if err != nil {
		return nil, err
	}

	return toDTO(u), nil
}
