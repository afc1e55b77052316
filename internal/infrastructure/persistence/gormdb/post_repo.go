package gormdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/postboard/internal/domain/post"
	apperrors "github.com/xiebiao/postboard/pkg/errors"
)

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository 创建文章仓储
func NewPostRepository(db *gorm.DB) post.Repository {
	return &postRepository{db: db}
}

// List 查询全部文章（ID正序）
func (r *postRepository) List(ctx context.Context) ([]*post.Post, error) {
	var models []PostModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询文章列表失败")
	}

	posts := make([]*post.Post, 0, len(models))
	for i := range models {
		posts = append(posts, toPostEntity(&models[i]))
	}
	return posts, nil
}

// FindByID 根据ID查找文章
func (r *postRepository) FindByID(ctx context.Context, id uint) (*post.Post, error) {
	var model PostModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, post.ErrPostNotFound
		}
		return nil, apperrors.Wrap(err, "查询文章失败")
	}
	return toPostEntity(&model), nil
}

func toPostEntity(model *PostModel) *post.Post {
	return &post.Post{
		ID:        model.ID,
		Title:     model.Title,
		Content:   model.Content,
		Published: model.Published,
		AuthorID:  model.AuthorID,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
