package post

import "time"

// Post 文章实体
// 本服务只读，数据由其他系统写入
type Post struct {
	ID        uint
	Title     string
	Content   string
	Published bool
	AuthorID  *uint // 可为空
	CreatedAt time.Time
	UpdatedAt time.Time
}
