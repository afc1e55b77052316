package dto

import "time"

// UserRequest 创建/更新用户请求
// 创建和更新共用同一套校验规则：name 3-255个字符，email合法且必填
type UserRequest struct {
	Name  string `json:"name" binding:"required,min=3,max=255" example:"Ann Lee"`
	Email string `json:"email" binding:"required,email" example:"ann@example.com"`
}

// UserResponse 用户响应
type UserResponse struct {
	ID        uint      `json:"id" example:"1"`
	Name      string    `json:"name" example:"Ann Lee"`
	Email     string    `json:"email" example:"ann@example.com"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-15T10:30:00Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2024-01-15T10:30:00Z"`
}
