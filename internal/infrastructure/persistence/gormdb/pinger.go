package gormdb

import (
	"context"

	"gorm.io/gorm"

	apperrors "github.com/xiebiao/postboard/pkg/errors"
)

// Pinger 数据库就绪检查
type Pinger struct {
	db *gorm.DB
}

// NewPinger 创建就绪检查器
func NewPinger(db *gorm.DB) *Pinger {
	return &Pinger{db: db}
}

// Ping 检查连接池是否可用，失败返回ErrServiceUnhealthy
func (p *Pinger) Ping(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return apperrors.WrapCode(apperrors.ErrCodeServiceUnhealthy, err, apperrors.ErrServiceUnhealthy.Message)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return apperrors.WrapCode(apperrors.ErrCodeServiceUnhealthy, err, apperrors.ErrServiceUnhealthy.Message)
	}
	return nil
}
