package user

import (
	apperrors "github.com/xiebiao/postboard/pkg/errors"
)

// 用户领域错误定义
var (
	// ErrUserNotFound 用户不存在
	ErrUserNotFound = apperrors.New(apperrors.ErrCodeUserNotFound, "User not found")

	// ErrEmailTaken 邮箱已被其他用户占用（由唯一索引冲突转换而来）
	ErrEmailTaken = apperrors.New(apperrors.ErrCodeEmailDuplicate, "Email already been taken")

	// ErrInvalidName 姓名长度不合法
	ErrInvalidName = apperrors.New(apperrors.ErrCodeInvalidParams, "Validation failed")
)
