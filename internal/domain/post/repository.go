package post

import "context"

// Repository 文章仓储接口
type Repository interface {
	// List 查询全部文章，按ID正序
	List(ctx context.Context) ([]*Post, error)

	// FindByID 根据ID查找文章
	// 如果不存在，返回ErrPostNotFound
	FindByID(ctx context.Context, id uint) (*Post, error)
}
