package post

import "context"

// Service 文章领域服务（只读）
type Service interface {
	List(ctx context.Context) ([]*Post, error)
	Get(ctx context.Context, id uint) (*Post, error)
}

type service struct {
	repo Repository
}

// NewService 创建文章服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]*Post, error) {
	return s.repo.List(ctx)
}

// Get 获取单篇文章，不存在返回ErrPostNotFound
func (s *service) Get(ctx context.Context, id uint) (*Post, error) {
	if id == 0 {
		return nil, ErrPostNotFound
	}
	return s.repo.FindByID(ctx, id)
}
