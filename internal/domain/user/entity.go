package user

import (
	"time"
	"unicode/utf8"
)

// 名称长度限制（按字符计数）
const (
	NameMinLength = 3
	NameMaxLength = 255
)

// User 用户实体（聚合根）
// 领域实体不依赖GORM tag，映射由infrastructure层的Repository实现处理
type User struct {
	ID        uint
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser 创建新用户（工厂方法）
func NewUser(name, email string) *User {
	now := time.Now()
	return &User{
		Name:      name,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ChangeProfile 整体替换姓名和邮箱
func (u *User) ChangeProfile(name, email string) {
	u.Name = name
	u.Email = email
	u.UpdatedAt = time.Now()
}

// ValidName 姓名长度校验，HTTP层binding之外的兜底
func ValidName(name string) bool {
	n := utf8.RuneCountInString(name)
	return n >= NameMinLength && n <= NameMaxLength
}
