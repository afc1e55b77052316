package user

import (
	"time"

	"github.com/xiebiao/postboard/internal/domain/user"
)

// UserDTO 用户应用层DTO
type UserDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateUserRequest 创建用户请求
type CreateUserRequest struct {
	Name  string
	Email string
}

// UpdateUserRequest 更新用户请求
type UpdateUserRequest struct {
	ID    uint
	Name  string
	Email string
}

// toDTO 领域实体 → 应用层DTO
func toDTO(u *user.User) *UserDTO {
	return &UserDTO{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
