package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	apperrors "github.com/xiebiao/postboard/pkg/errors"
	"github.com/xiebiao/postboard/pkg/response"
)

// Recovery 捕获handler中的panic，记录堆栈并返回500
func Recovery(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.WithContext(c.Request.Context()).WithFields(logrus.Fields{
					"method": c.Request.Method,
					"path":   c.Request.URL.Path,
					"panic":  fmt.Sprint(r),
					"stack":  string(debug.Stack()),
				}).Error("panic recovered")

				c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
					Message: apperrors.ErrInternal.Message,
				})
			}
		}()
		c.Next()
	}
}
