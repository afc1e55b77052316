package user

import (
	"context"
)

// Repository 用户仓储接口
// 接口定义在domain层，GORM实现在infrastructure/persistence/gormdb
type Repository interface {
	// List 查询全部用户，按ID倒序
	List(ctx context.Context) ([]*User, error)

	// FindByID 根据ID查找用户
	// 如果不存在，返回ErrUserNotFound
	FindByID(ctx context.Context, id uint) (*User, error)

	// Create 创建用户，成功后回填ID和时间戳
	// 邮箱冲突返回ErrEmailTaken
	Create(ctx context.Context, user *User) error

	// Update 覆盖姓名和邮箱
	// 邮箱被其他用户占用返回ErrEmailTaken
	Update(ctx context.Context, user *User) error

	// Delete 物理删除用户
	// 如果不存在，返回ErrUserNotFound
	Delete(ctx context.Context, id uint) error
}
