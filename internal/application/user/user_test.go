package user

import (
	"context"
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/postboard/internal/domain/user"
	"github.com/xiebiao/postboard/internal/infrastructure/persistence/gormdb"
	"github.com/xiebiao/postboard/internal/infrastructure/persistence/gormdb/testutil"
	"github.com/xiebiao/postboard/pkg/metrics"
)

type useCases struct {
	create *CreateUserUseCase
	update *UpdateUserUseCase
	delete *DeleteUserUseCase
	query  *QueryUsersUseCase
}

func newUseCases(t *testing.T) useCases {
	t.Helper()
	svc := user.NewService(gormdb.NewUserRepository(testutil.NewDB(t)))
	return useCases{
		create: NewCreateUserUseCase(svc),
		update: NewUpdateUserUseCase(svc),
		delete: NewDeleteUserUseCase(svc),
		query:  NewQueryUsersUseCase(svc),
	}
}

func mutationCount(t *testing.T, operation, result string) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, metrics.UserMutationsTotal.With(map[string]string{
		"operation": operation,
		"result":    result,
	}).Write(&m))
	return m.Counter.GetValue()
}

func TestUserUseCases(t *testing.T) {
	metrics.InitMetrics()
	ctx := context.Background()
	uc := newUseCases(t)

	t.Run("创建并查询", func(t *testing.T) {
		before := mutationCount(t, "create", "success")

		created, err := uc.create.Execute(ctx, CreateUserRequest{Name: "Ann Lee", Email: "ann@example.com"})
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.Equal(t, before+1, mutationCount(t, "create", "success"))

		got, err := uc.query.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.Email, got.Email)
	})

	t.Run("重复邮箱记录duplicate", func(t *testing.T) {
		before := mutationCount(t, "create", "duplicate")

		_, err := uc.create.Execute(ctx, CreateUserRequest{Name: "Ann Clone", Email: "ann@example.com"})
		assert.ErrorIs(t, err, user.ErrEmailTaken)
		assert.Equal(t, before+1, mutationCount(t, "create", "duplicate"))
	})

	t.Run("更新他人邮箱", func(t *testing.T) {
		bob, err := uc.create.Execute(ctx, CreateUserRequest{Name: "Bob Stone", Email: "bob@example.com"})
		require.NoError(t, err)

		_, err = uc.update.Execute(ctx, UpdateUserRequest{ID: bob.ID, Name: "Bob Stone", Email: "ann@example.com"})
		assert.ErrorIs(t, err, user.ErrEmailTaken)

		updated, err := uc.update.Execute(ctx, UpdateUserRequest{ID: bob.ID, Name: "Robert Stone", Email: "bob@example.com"})
		require.NoError(t, err)
		assert.Equal(t, "Robert Stone", updated.Name)
	})

	t.Run("列表ID倒序", func(t *testing.T) {
		items, err := uc.query.List(ctx)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Greater(t, items[0].ID, items[1].ID)
	})

	t.Run("重复删除", func(t *testing.T) {
		items, err := uc.query.List(ctx)
		require.NoError(t, err)
		id := items[0].ID

		before := mutationCount(t, "delete", "not_found")
		require.NoError(t, uc.delete.Execute(ctx, id))
		assert.ErrorIs(t, uc.delete.Execute(ctx, id), user.ErrUserNotFound)
		assert.Equal(t, before+1, mutationCount(t, "delete", "not_found"))

		_, err = uc.query.Get(ctx, id)
		assert.ErrorIs(t, err, user.ErrUserNotFound)
	})
}

func TestMutationResult(t *testing.T) {
	assert.Equal(t, "success", mutationResult(nil))
	assert.Equal(t, "duplicate", mutationResult(user.ErrEmailTaken))
	assert.Equal(t, "not_found", mutationResult(user.ErrUserNotFound))
	assert.Equal(t, "invalid", mutationResult(user.ErrInvalidName))
	assert.Equal(t, "error", mutationResult(context.Canceled))
}
