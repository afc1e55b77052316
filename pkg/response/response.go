package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/postboard/pkg/errors"
)

// Response 统一响应信封
// 设计说明：
// 1. Message是提示信息（创建、更新、删除、错误时返回）
// 2. Item是单条记录，Items是记录列表
// 3. Errors是字段级校验错误（字段名 → 错误描述）
type Response struct {
	Message string            `json:"message,omitempty"`
	Item    interface{}       `json:"item,omitempty"`
	Items   interface{}       `json:"items,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// JSON 以指定状态码输出信封
func JSON(c *gin.Context, status int, body Response) {
	c.JSON(status, body)
}

// Item 单条记录响应
// message为空时不输出message字段
func Item(c *gin.Context, status int, message string, item interface{}) {
	c.JSON(status, Response{
		Message: message,
		Item:    item,
	})
}

// Items 列表响应（状态码200）
// 注意：items传入空切片时输出[]而不是省略字段
func Items(c *gin.Context, items interface{}) {
	c.JSON(http.StatusOK, Response{
		Items: items,
	})
}

// Message 只包含提示信息的响应
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, Response{
		Message: message,
	})
}

// ValidationFailed 参数校验失败响应（422）
func ValidationFailed(c *gin.Context, fieldErrors map[string]string) {
	c.JSON(http.StatusUnprocessableEntity, Response{
		Message: apperrors.ErrInvalidParams.Message,
		Errors:  fieldErrors,
	})
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	item, err := useCase.Execute(...)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
//
// 内部错误通过c.Error挂到gin上下文，由请求日志中间件统一记录
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)

	if appErr.Err != nil {
		_ = c.Error(appErr.Err)
	}

	status := HTTPStatus(appErr.Code)
	message := appErr.Message
	if status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable {
		// 服务端错误不向客户端暴露内部描述
		message = apperrors.ErrInternal.Message
	}

	c.JSON(status, Response{
		Message: message,
	})
}

// HTTPStatus 业务错误码 → HTTP状态码
func HTTPStatus(code int) int {
	switch {
	case code == apperrors.ErrCodeServiceUnhealthy:
		return http.StatusServiceUnavailable
	case code >= 40400 && code < 40500:
		return http.StatusNotFound
	case code >= 40000 && code < 40100:
		return http.StatusUnprocessableEntity
	case code >= 40900 && code < 41000:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
