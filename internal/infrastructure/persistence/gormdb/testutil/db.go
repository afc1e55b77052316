// Package testutil 测试用SQLite内存数据库
package testutil

import (
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/xiebiao/postboard/internal/infrastructure/config"
	"github.com/xiebiao/postboard/internal/infrastructure/persistence/gormdb"
)

// Config 返回指向独立内存库的配置
// 每次调用使用新的库名，测试之间互不影响；单连接保证内存库不被回收
func Config() *config.Config {
	return &config.Config{
		Database: config.DatabaseConfig{
			Driver:       "sqlite",
			Path:         "file:" + uuid.NewString() + "?mode=memory&cache=shared",
			MaxOpenConns: 1,
			MaxIdleConns: 1,
			LogLevel:     "silent",
			AutoMigrate:  true,
		},
	}
}

// NewDB 创建已迁移的测试数据库，测试结束自动关闭
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	db, cleanup, err := gormdb.NewDB(Config(), log)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	return db
}

// SeedPosts 写入测试文章，返回带ID的模型
func SeedPosts(t *testing.T, db *gorm.DB, posts ...gormdb.PostModel) []gormdb.PostModel {
	t.Helper()
	if len(posts) == 0 {
		return posts
	}
	require.NoError(t, db.Create(&posts).Error)
	return posts
}
