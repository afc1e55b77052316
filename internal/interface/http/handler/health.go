package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/postboard/pkg/response"
)

// Pinger 依赖就绪检查
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler 存活与就绪检查
type HealthHandler struct {
	pinger Pinger
}

// NewHealthHandler 创建健康检查处理器
func NewHealthHandler(pinger Pinger) *HealthHandler {
	return &HealthHandler{pinger: pinger}
}

// Hello 存活检查
// @Summary      存活检查
// @Tags         健康检查
// @Produce      json
// @Success      200 {object} response.Response "Hello World"
// @Router       /api [get]
func (h *HealthHandler) Hello(c *gin.Context) {
	response.Message(c, http.StatusOK, "Hello World")
}

// Ping 就绪检查，数据库不可用时返回503
// @Summary      就绪检查
// @Tags         健康检查
// @Produce      json
// @Success      200 {object} map[string]string "pong"
// @Failure      503 {object} response.Response "database unavailable"
// @Router       /ping [get]
func (h *HealthHandler) Ping(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.pinger.Ping(ctx); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "pong",
		"status":  "healthy",
	})
}
