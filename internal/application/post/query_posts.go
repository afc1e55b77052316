package post

import (
	"context"
	"time"

	"github.com/xiebiao/postboard/internal/domain/post"
)

// PostDTO 文章应用层DTO
type PostDTO struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Published bool      `json:"published"`
	AuthorID  *uint     `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// QueryPostsUseCase 文章查询用例
type QueryPostsUseCase struct {
	postService post.Service
}

// NewQueryPostsUseCase 创建查询用例
func NewQueryPostsUseCase(postService post.Service) *QueryPostsUseCase {
	return &QueryPostsUseCase{
		postService: postService,
	}
}

// List 文章列表（ID正序）
func (uc *QueryPostsUseCase) List(ctx context.Context) ([]*PostDTO, error) {
	posts, err := uc.postService.List(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*PostDTO, 0, len(posts))
	for _, p := range posts {
		items = append(items, toDTO(p))
	}
	return items, nil
}

// Get 文章详情，不存在返回ErrPostNotFound
func (uc *QueryPostsUseCase) Get(ctx context.Context, id uint) (*PostDTO, error) {
	p, err := uc.postService.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDTO(p), nil
}

func toDTO(p *post.Post) *PostDTO {
	return &PostDTO{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Published: p.Published,
		AuthorID:  p.AuthorID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
