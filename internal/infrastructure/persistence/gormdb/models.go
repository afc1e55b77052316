package gormdb

import "time"

// UserModel GORM用户模型
// domain/user/entity.go是领域实体，不依赖GORM，Repository负责两者之间的转换
// 没有DeletedAt：删除为物理删除，邮箱随即可被复用
type UserModel struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:255;not null"`
	Email     string    `gorm:"uniqueIndex:idx_users_email;size:255;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName 指定表名
func (UserModel) TableName() string {
	return "users"
}

// PostModel GORM文章模型
type PostModel struct {
	ID        uint   `gorm:"primaryKey"`
	Title     string `gorm:"size:255;not null"`
	Content   string `gorm:"type:text"`
	Published bool   `gorm:"default:false;not null"`
	AuthorID  *uint  `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName 指定表名
func (PostModel) TableName() string {
	return "posts"
}
