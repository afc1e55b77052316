package post

import (
	apperrors "github.com/xiebiao/postboard/pkg/errors"
)

// ErrPostNotFound 文章不存在
var ErrPostNotFound = apperrors.New(apperrors.ErrCodePostNotFound, "Post not found")
