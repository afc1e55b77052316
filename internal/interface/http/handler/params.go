package handler

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
)

// pathID 解析路径参数:id
// 非数字、0、超出范围都返回0，由下游按"不存在"处理
func pathID(c *gin.Context) uint {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id > math.MaxInt64 {
		return 0
	}
	return uint(id)
}
