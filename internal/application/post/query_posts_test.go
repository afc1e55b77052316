package post

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/postboard/internal/domain/post"
	"github.com/xiebiao/postboard/internal/infrastructure/persistence/gormdb"
	"github.com/xiebiao/postboard/internal/infrastructure/persistence/gormdb/testutil"
)

func TestQueryPostsUseCase(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	uc := NewQueryPostsUseCase(post.NewService(gormdb.NewPostRepository(db)))

	t.Run("空表", func(t *testing.T) {
		items, err := uc.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	seeded := testutil.SeedPosts(t, db,
		gormdb.PostModel{Title: "Hello", Content: "first post", Published: true},
		gormdb.PostModel{Title: "World", Content: "second post"},
	)

	t.Run("列表与详情", func(t *testing.T) {
		items, err := uc.List(ctx)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, seeded[0].ID, items[0].ID)

		got, err := uc.Get(ctx, seeded[1].ID)
		require.NoError(t, err)
		assert.Equal(t, "World", got.Title)
		assert.False(t, got.Published)
	})

	t.Run("不存在", func(t *testing.T) {
		_, err := uc.Get(ctx, 999999)
		assert.ErrorIs(t, err, post.ErrPostNotFound)
	})
}
