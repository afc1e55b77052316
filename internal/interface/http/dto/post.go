package dto

import "time"

// PostResponse 文章响应
type PostResponse struct {
	ID        uint      `json:"id" example:"1"`
	Title     string    `json:"title" example:"Hello World"`
	Content   string    `json:"content" example:"My first post"`
	Published bool      `json:"published" example:"true"`
	AuthorID  *uint     `json:"author_id" example:"1"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-15T10:30:00Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2024-01-15T10:30:00Z"`
}
