//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 集成测试通用辅助函数：针对运行中的服务发送HTTP请求并解析响应信封

// Timeout HTTP请求超时时间
const Timeout = 10 * time.Second

// BaseURL API基础URL，可通过POSTBOARD_BASE_URL覆盖
func BaseURL() string {
	if url := os.Getenv("POSTBOARD_BASE_URL"); url != "" {
		return url
	}
	return "http://localhost:3000/api"
}

// Response 响应信封
type Response struct {
	Status  int               `json:"-"`
	Message string            `json:"message"`
	Item    json.RawMessage   `json:"item"`
	Items   json.RawMessage   `json:"items"`
	Errors  map[string]string `json:"errors"`
}

// UserData 用户数据
type UserData struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DoJSON 发送请求并解析JSON响应
// data为nil时不发送请求体
func DoJSON(t *testing.T, method, url string, data interface{}) *Response {
	t.Helper()

	var body io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		require.NoError(t, err, "JSON序列化失败")
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err, "创建HTTP请求失败")
	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "发送HTTP请求失败")
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")

	result := Response{Status: resp.StatusCode}
	require.NoError(t, json.Unmarshal(raw, &result), "解析JSON响应失败: %s", string(raw))

	return &result
}

// DecodeUser 解析响应中的item为用户
func DecodeUser(t *testing.T, resp *Response) UserData {
	t.Helper()
	var u UserData
	require.NoError(t, json.Unmarshal(resp.Item, &u), "解析用户失败")
	return u
}

// GenerateTestEmail 生成唯一的测试邮箱，避免重复运行时冲突
func GenerateTestEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.com", prefix, time.Now().UnixNano())
}

// CreateTestUser 创建测试用户并返回
func CreateTestUser(t *testing.T, name string) UserData {
	t.Helper()
	resp := DoJSON(t, http.MethodPost, BaseURL()+"/users/new", map[string]string{
		"name":  name,
		"email": GenerateTestEmail("user"),
	})
	require.Equal(t, http.StatusCreated, resp.Status, "创建用户失败: %s", resp.Message)
	return DecodeUser(t, resp)
}

// UserURL 用户详情URL
func UserURL(id uint) string {
	return fmt.Sprintf("%s/users/%d", BaseURL(), id)
}
