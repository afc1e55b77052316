package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appuser "github.com/xiebiao/postboard/internal/application/user"
	"github.com/xiebiao/postboard/internal/interface/http/dto"
	"github.com/xiebiao/postboard/pkg/response"
	"github.com/xiebiao/postboard/pkg/validator"
)

// UserHandler 用户HTTP处理器
// 只负责解析请求、调用应用层、返回响应，业务规则在domain和application层
type UserHandler struct {
	createUseCase *appuser.CreateUserUseCase
	updateUseCase *appuser.UpdateUserUseCase
	deleteUseCase *appuser.DeleteUserUseCase
	queryUseCase  *appuser.QueryUsersUseCase
}

// NewUserHandler 创建用户处理器
func NewUserHandler(
	createUseCase *appuser.CreateUserUseCase,
	updateUseCase *appuser.UpdateUserUseCase,
	deleteUseCase *appuser.DeleteUserUseCase,
	queryUseCase *appuser.QueryUsersUseCase,
) *UserHandler {
	return &UserHandler{
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		queryUseCase:  queryUseCase,
	}
}

// List 用户列表
// @Summary      用户列表
// @Description  返回全部用户，按ID倒序
// @Tags         用户
// @Produce      json
// @Success      200 {object} response.Response{items=[]dto.UserResponse} "用户列表"
// @Failure      500 {object} response.Response "服务器错误"
// @Router       /api/users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.queryUseCase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, toUserResponse(u))
	}
	response.Items(c, items)
}

// Get 用户详情
// @Summary      用户详情
// @Tags         用户
// @Produce      json
// @Param        id path int true "用户ID"
// @Success      200 {object} response.Response{item=dto.UserResponse} "用户详情"
// @Failure      404 {object} response.Response "User not found"
// @Router       /api/users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.queryUseCase.Get(c.Request.Context(), pathID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Item(c, http.StatusOK, "", toUserResponse(u))
}

// Create 创建用户
// @Summary      创建用户
// @Description  邮箱全局唯一
// @Tags         用户
// @Accept       json
// @Produce      json
// @Param        request body dto.UserRequest true "用户信息"
// @Success      201 {object} response.Response{item=dto.UserResponse} "User created"
// @Failure      422 {object} response.Response "Validation failed / Email already been taken"
// @Router       /api/users/new [post]
func (h *UserHandler) Create(c *gin.Context) {
	// 1. 绑定并校验参数
	var req dto.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, validator.Translate(err))
		return
	}

	// 2. 调用应用层用例
	result, err := h.createUseCase.Execute(c.Request.Context(), appuser.CreateUserRequest{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	// 3. 返回201
	response.Item(c, http.StatusCreated, "User created", toUserResponse(result))
}

// Update 更新用户
// @Summary      更新用户
// @Description  整体替换姓名和邮箱，可以保留自己当前的邮箱
// @Tags         用户
// @Accept       json
// @Produce      json
// @Param        id path int true "用户ID"
// @Param        request body dto.UserRequest true "用户信息"
// @Success      200 {object} response.Response{item=dto.UserResponse} "User updated"
// @Failure      404 {object} response.Response "User not found"
// @Failure      422 {object} response.Response "Validation failed / Email already been taken"
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	// 1. 先校验请求体，再查找用户
	var req dto.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, validator.Translate(err))
		return
	}

	// 2. 调用应用层用例
	result, err := h.updateUseCase.Execute(c.Request.Context(), appuser.UpdateUserRequest{
		ID:    pathID(c),
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Item(c, http.StatusOK, "User updated", toUserResponse(result))
}

// Delete 删除用户
// @Summary      删除用户
// @Tags         用户
// @Produce      json
// @Param        id path int true "用户ID"
// @Success      200 {object} response.Response "User deleted"
// @Failure      404 {object} response.Response "User not found"
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.deleteUseCase.Execute(c.Request.Context(), pathID(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "User deleted")
}

func toUserResponse(u *appuser.UserDTO) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
