package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/xiebiao/postboard/pkg/tracing"
)

const (
	// RequestIDHeader 请求ID响应头
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey gin.Context中的请求ID键
	RequestIDKey = "request_id"

	slowRequestThreshold = 3 * time.Second
)

// Logger 请求日志中间件
// 1. 沿用上游传入的X-Request-ID，没有则生成
// 2. 记录方法、路径、路由、状态码、耗时、客户端IP、TraceID
// 3. 按状态码选择级别：5xx error，4xx warn，其余info
// 4. handler通过c.Error挂上的内部错误在这里统一输出
func Logger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 步骤1: 请求ID
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		// 步骤2: 处理请求
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		// 步骤3: 结构化输出
		status := c.Writer.Status()
		fields := logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"route":      c.FullPath(),
			"status":     status,
			"latency":    latency.String(),
			"client_ip":  c.ClientIP(),
		}
		if traceID := tracing.ExtractTraceID(c.Request.Context()); traceID != "" {
			fields["trace_id"] = traceID
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}

		entry := log.WithContext(c.Request.Context()).WithFields(fields)
		switch {
		case status >= 500:
			entry.Error("request failed")
		case status >= 400:
			entry.Warn("request rejected")
		default:
			entry.Info("request completed")
		}

		if latency > slowRequestThreshold {
			entry.Warn("slow request")
		}
	}
}

// GetRequestID 从Context获取请求ID
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
