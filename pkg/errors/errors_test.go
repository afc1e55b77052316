package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	t.Run("Error包含内部错误", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := Wrap(cause, "查询用户失败")

		assert.Equal(t, "[50000] 查询用户失败: connection refused", err.Error())
		assert.ErrorIs(t, err, cause)
	})

	t.Run("Error不含内部错误", func(t *testing.T) {
		err := New(ErrCodeUserNotFound, "User not found")
		assert.Equal(t, "[40401] User not found", err.Error())
	})

	t.Run("Wrapf格式化消息", func(t *testing.T) {
		err := Wrapf(errors.New("boom"), "删除用户%d失败", 7)
		assert.Equal(t, "删除用户7失败", err.Message)
		assert.Equal(t, ErrCodeInternal, err.Code)
	})

	t.Run("WrapCode保留错误码", func(t *testing.T) {
		cause := errors.New("dial tcp: connection refused")
		err := WrapCode(ErrCodeServiceUnhealthy, cause, "database unavailable")
		assert.Equal(t, ErrCodeServiceUnhealthy, err.Code)
		assert.ErrorIs(t, err, cause)
	})
}

func TestGetAppError(t *testing.T) {
	t.Run("提取被包装的AppError", func(t *testing.T) {
		inner := New(ErrCodeEmailDuplicate, "Email already been taken")
		wrapped := Wrap(inner, "创建用户失败")

		assert.True(t, IsAppError(wrapped))
		assert.Same(t, wrapped, GetAppError(wrapped))
		assert.True(t, IsCode(inner, ErrCodeEmailDuplicate))
	})

	t.Run("普通错误包装为Internal", func(t *testing.T) {
		appErr := GetAppError(errors.New("boom"))

		assert.Equal(t, ErrCodeInternal, appErr.Code)
		assert.EqualError(t, appErr.Err, "boom")
		assert.False(t, IsCode(errors.New("boom"), ErrCodeInternal))
	})
}
