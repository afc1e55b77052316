package gormdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/postboard/internal/domain/user"
	apperrors "github.com/xiebiao/postboard/pkg/errors"
)

// userRepository 用户仓储实现（GORM）
// 负责领域实体与GORM模型之间的转换，并把唯一索引冲突转换为业务错误
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户仓储
func NewUserRepository(db *gorm.DB) user.Repository {
	return &userRepository{db: db}
}

// List 查询全部用户（ID倒序）
func (r *userRepository) List(ctx context.Context) ([]*user.User, error) {
	var models []UserModel
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询用户列表失败")
	}

	users := make([]*user.User, 0, len(models))
	for i := range models {
		users = append(users, toUserEntity(&models[i]))
	}
	return users, nil
}

// FindByID 根据ID查找用户
func (r *userRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	var model UserModel
	err := r.db.WithContext(ctx).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "查询用户失败")
	}

	return toUserEntity(&model), nil
}

// Create 创建用户
// 邮箱唯一性由UNIQUE索引保证，不做SELECT再INSERT
func (r *userRepository) Create(ctx context.Context, u *user.User) error {
	// 1. 领域实体 → GORM模型
	model := &UserModel{
		Name:  u.Name,
		Email: u.Email,
	}

	// 2. 插入数据库
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return user.ErrEmailTaken
		}
		return apperrors.Wrap(err, "创建用户失败")
	}

	// 3. 回填自增ID和时间戳
	u.ID = model.ID
	u.CreatedAt = model.CreatedAt
	u.UpdatedAt = model.UpdatedAt

	return nil
}

// Update 覆盖姓名和邮箱
// 不用Save：目标行不存在时Save会退化为INSERT
func (r *userRepository) Update(ctx context.Context, u *user.User) error {
	err := r.db.WithContext(ctx).
		Model(&UserModel{ID: u.ID}).
		Updates(map[string]interface{}{
			"name":       u.Name,
			"email":      u.Email,
			"updated_at": u.UpdatedAt,
		}).Error

	if err != nil {
		if isDuplicateError(err) {
			return user.ErrEmailTaken
		}
		return apperrors.Wrap(err, "更新用户失败")
	}

	return nil
}

// Delete 物理删除用户
func (r *userRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&UserModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除用户失败")
	}

	if result.RowsAffected == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

// toUserEntity GORM模型 → 领域实体
func toUserEntity(model *UserModel) *user.User {
	return &user.User{
		ID:        model.ID,
		Name:      model.Name,
		Email:     model.Email,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
