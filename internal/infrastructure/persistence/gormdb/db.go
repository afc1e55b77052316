package gormdb

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/xiebiao/postboard/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 1. 按database.driver选择方言（mysql/postgres/sqlite）
// 2. 开启TranslateError，唯一索引冲突统一为gorm.ErrDuplicatedKey
// 3. 配置连接池并Ping
// 4. 按需AutoMigrate
// 返回的cleanup关闭连接池，由wire在退出时调用
func NewDB(cfg *config.Config, log *logrus.Logger) (*gorm.DB, func(), error) {
	// 1. 选择方言
	dialector, err := openDialector(cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	// 2. 连接数据库，SQL日志走logrus
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: NewLogger(log, ParseLogLevel(cfg.Database.LogLevel), cfg.Database.SlowThreshold),
		// 把驱动错误翻译为gorm.ErrDuplicatedKey等通用错误
		TranslateError: true,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	// 3. 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	cleanup := func() {
		if err := sqlDB.Close(); err != nil {
			log.WithError(err).Warn("关闭数据库连接失败")
			return
		}
		log.Info("数据库连接已关闭")
	}

	// 4. 测试连接
	if err := sqlDB.Ping(); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.WithField("driver", cfg.Database.Driver).Info("数据库连接成功")

	// 5. 自动迁移表结构
	// 只创建表、补字段和索引，不删除或修改已有字段
	if cfg.Database.AutoMigrate {
		if err := AutoMigrate(db); err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("数据库迁移失败: %w", err)
		}
	}

	return db, cleanup, nil
}

// AutoMigrate 自动迁移表结构
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&UserModel{},
		&PostModel{},
	)
}

func openDialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "mysql":
		return mysql.Open(cfg.DSN()), nil
	case "postgres":
		return postgres.Open(cfg.DSN()), nil
	case "sqlite":
		return sqlite.Open(cfg.DSN()), nil
	default:
		return nil, fmt.Errorf("不支持的数据库驱动: %s", cfg.Driver)
	}
}
