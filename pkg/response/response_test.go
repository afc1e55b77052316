package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/postboard/pkg/errors"
)

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "解析响应失败: %s", w.Body.String())
	return body
}

func TestHTTPStatus(t *testing.T) {
	cases := map[int]int{
		apperrors.ErrCodeUserNotFound:     http.StatusNotFound,
		apperrors.ErrCodePostNotFound:     http.StatusNotFound,
		apperrors.ErrCodeEmailDuplicate:   http.StatusUnprocessableEntity,
		apperrors.ErrCodeInvalidParams:    http.StatusUnprocessableEntity,
		apperrors.ErrCodeInternal:         http.StatusInternalServerError,
		apperrors.ErrCodeDatabaseError:    http.StatusInternalServerError,
		apperrors.ErrCodeServiceUnhealthy: http.StatusServiceUnavailable,
	}

	for code, want := range cases {
		assert.Equal(t, want, HTTPStatus(code), "code=%d", code)
	}
}

func TestError(t *testing.T) {
	t.Run("业务错误返回原始消息", func(t *testing.T) {
		c, w := newTestContext()

		Error(c, apperrors.New(apperrors.ErrCodeUserNotFound, "User not found"))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, map[string]interface{}{"message": "User not found"}, decode(t, w))
		assert.Empty(t, c.Errors)
	})

	t.Run("内部错误隐藏细节并挂到上下文", func(t *testing.T) {
		c, w := newTestContext()

		Error(c, apperrors.Wrap(errors.New("dial tcp: connection refused"), "查询用户失败"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Internal Server Error", decode(t, w)["message"])
		require.Len(t, c.Errors, 1)
		assert.Contains(t, c.Errors.String(), "connection refused")
	})

	t.Run("非AppError按内部错误处理", func(t *testing.T) {
		c, w := newTestContext()

		Error(c, errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Len(t, c.Errors, 1)
	})
}

func TestEnvelope(t *testing.T) {
	t.Run("空列表输出[]", func(t *testing.T) {
		c, w := newTestContext()

		Items(c, []string{})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"items":[]}`, w.Body.String())
	})

	t.Run("创建响应包含message和item", func(t *testing.T) {
		c, w := newTestContext()

		Item(c, http.StatusCreated, "User created", map[string]int{"id": 1})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"message":"User created","item":{"id":1}}`, w.Body.String())
	})

	t.Run("校验失败输出字段错误", func(t *testing.T) {
		c, w := newTestContext()

		ValidationFailed(c, map[string]string{"name": "too short"})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.JSONEq(t, `{"message":"Validation failed","errors":{"name":"too short"}}`, w.Body.String())
	})
}
