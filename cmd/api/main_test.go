package main

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeApp(t *testing.T) {
	t.Setenv("POSTBOARD_SERVER_MODE", "test")
	t.Setenv("POSTBOARD_SERVER_PORT", "3999")
	t.Setenv("POSTBOARD_DATABASE_DRIVER", "sqlite")
	t.Setenv("POSTBOARD_DATABASE_PATH", filepath.Join(t.TempDir(), "postboard.db"))
	t.Setenv("POSTBOARD_DATABASE_LOG_LEVEL", "silent")
	t.Setenv("POSTBOARD_LOG_LEVEL", "error")

	app, cleanup, err := InitializeApp()
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, ":3999", app.Server.Addr)
	assert.Equal(t, 10*time.Second, app.Server.ReadTimeout)

	t.Run("路由已挂载", func(t *testing.T) {
		for path, status := range map[string]int{
			"/api":       http.StatusOK,
			"/api/users": http.StatusOK,
			"/api/posts": http.StatusOK,
			"/ping":      http.StatusOK,
			"/metrics":   http.StatusOK,
			"/nowhere":   http.StatusNotFound,
		} {
			w := httptest.NewRecorder()
			app.Server.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, status, w.Code, path)
		}
	})

	t.Run("swagger文档", func(t *testing.T) {
		w := httptest.NewRecorder()
		app.Server.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "/api/users/new")
	})
}
