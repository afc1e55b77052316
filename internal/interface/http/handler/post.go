package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apppost "github.com/xiebiao/postboard/internal/application/post"
	"github.com/xiebiao/postboard/internal/interface/http/dto"
	"github.com/xiebiao/postboard/pkg/response"
)

// PostHandler 文章HTTP处理器（只读）
type PostHandler struct {
	queryUseCase *apppost.QueryPostsUseCase
}

// NewPostHandler 创建文章处理器
func NewPostHandler(queryUseCase *apppost.QueryPostsUseCase) *PostHandler {
	return &PostHandler{queryUseCase: queryUseCase}
}

// List 文章列表
// @Summary      文章列表
// @Description  返回全部文章，按ID正序
// @Tags         文章
// @Produce      json
// @Success      200 {object} response.Response{items=[]dto.PostResponse} "文章列表"
// @Router       /api/posts [get]
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.queryUseCase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]*dto.PostResponse, 0, len(posts))
	for _, p := range posts {
		items = append(items, toPostResponse(p))
	}
	response.Items(c, items)
}

// Get 文章详情
// @Summary      文章详情
// @Tags         文章
// @Produce      json
// @Param        id path int true "文章ID"
// @Success      200 {object} response.Response{item=dto.PostResponse} "文章详情"
// @Failure      404 {object} response.Response "Post not found"
// @Router       /api/posts/{id} [get]
func (h *PostHandler) Get(c *gin.Context) {
	p, err := h.queryUseCase.Get(c.Request.Context(), pathID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Item(c, http.StatusOK, "", toPostResponse(p))
}

func toPostResponse(p *apppost.PostDTO) *dto.PostResponse {
	return &dto.PostResponse{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Published: p.Published,
		AuthorID:  p.AuthorID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
