package user

import (
	"context"
)

// Service 用户领域服务
// 邮箱唯一性不做预查询，完全由数据库唯一索引保证，Repository把冲突转换为ErrEmailTaken
type Service interface {
	// List 用户列表（ID倒序）
	List(ctx context.Context) ([]*User, error)

	// Get 获取单个用户
	Get(ctx context.Context, id uint) (*User, error)

	// Create 创建用户
	Create(ctx context.Context, name, email string) (*User, error)

	// Update 更新用户
	// 业务规则：
	// - 用户必须存在
	// - 邮箱可以保持不变，但不能与其他用户冲突
	Update(ctx context.Context, id uint, name, email string) (*User, error)

	// Delete 删除用户
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

// NewService 创建用户服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]*User, error) {
	return s.repo.List(ctx)
}

func (s *service) Get(ctx context.Context, id uint) (*User, error) {
	if id == 0 {
		return nil, ErrUserNotFound
	}
	return s.repo.FindByID(ctx, id)
}

// Create 创建用户
func (s *service) Create(ctx context.Context, name, email string) (*User, error) {
	// 1. 姓名长度校验
	if !ValidName(name) {
		return nil, ErrInvalidName
	}

	// 2. 持久化（邮箱冲突由Repository转换为ErrEmailTaken）
	u := NewUser(name, email)
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

// Update 更新用户
func (s *service) Update(ctx context.Context, id uint, name, email string) (*User, error) {
	// 1. 姓名长度校验
	if !ValidName(name) {
		return nil, ErrInvalidName
	}

	// 2. 用户必须存在
	if id == 0 {
		return nil, ErrUserNotFound
	}
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 3. 整体替换并写回
	u.ChangeProfile(name, email)
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrUserNotFound
	}
	return s.repo.Delete(ctx, id)
}
