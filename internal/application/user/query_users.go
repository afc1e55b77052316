package user

import (
	"context"

	"github.com/xiebiao/postboard/internal/domain/user"
)

// QueryUsersUseCase 用户查询用例（列表、详情）
type QueryUsersUseCase struct {
	userService user.Service
}

// NewQueryUsersUseCase 创建查询用例
func NewQueryUsersUseCase(userService user.Service) *QueryUsersUseCase {
	return &QueryUsersUseCase{
		userService: userService,
	}
}

// List 用户列表（ID倒序），没有用户时返回空切片
func (uc *QueryUsersUseCase) List(ctx context.Context) ([]*UserDTO, error) {
	users, err := uc.userService.List(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*UserDTO, 0, len(users))
	for _, u := range users {
		items = append(items, toDTO(u))
	}
	return items, nil
}

// Get 用户详情
func (uc *QueryUsersUseCase) Get(ctx context.Context, id uint) (*UserDTO, error) {
	u, err := uc.userService.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDTO(u), nil
}
