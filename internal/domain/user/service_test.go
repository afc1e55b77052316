package user

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockRepository 基于testify/mock的仓储替身
type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) List(ctx context.Context) ([]*User, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) FindByID(ctx context.Context, id uint) (*User, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) Create(ctx context.Context, u *User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockRepository) Update(ctx context.Context, u *User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("创建成功", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("Create", ctx, mock.AnythingOfType("*user.User")).
			Run(func(args mock.Arguments) { args.Get(1).(*User).ID = 7 }).
			Return(nil)

		u, err := NewService(repo).Create(ctx, "Ann Lee", "ann@example.com")
		require.NoError(t, err)
		assert.Equal(t, uint(7), u.ID)
		assert.Equal(t, "Ann Lee", u.Name)
		repo.AssertExpectations(t)
	})

	t.Run("邮箱冲突透传", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("Create", ctx, mock.Anything).Return(ErrEmailTaken)

		_, err := NewService(repo).Create(ctx, "Ann Lee", "ann@example.com")
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("姓名长度不合法", func(t *testing.T) {
		repo := new(mockRepository)
		svc := NewService(repo)

		_, err := svc.Create(ctx, "An", "ann@example.com")
		assert.ErrorIs(t, err, ErrInvalidName)

		_, err = svc.Create(ctx, strings.Repeat("a", 256), "ann@example.com")
		assert.ErrorIs(t, err, ErrInvalidName)

		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("多字节字符按字符计数", func(t *testing.T) {
		assert.True(t, ValidName("张小明"))
		assert.False(t, ValidName("张三"))
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("用户不存在", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("FindByID", ctx, uint(99)).Return(nil, ErrUserNotFound)

		_, err := NewService(repo).Update(ctx, 99, "Ann Lee", "ann@example.com")
		assert.ErrorIs(t, err, ErrUserNotFound)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("替换姓名和邮箱", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("FindByID", ctx, uint(1)).Return(&User{ID: 1, Name: "Ann Lee", Email: "ann@example.com"}, nil)
		repo.On("Update", ctx, mock.MatchedBy(func(u *User) bool {
			return u.ID == 1 && u.Name == "Ann Smith" && u.Email == "smith@example.com"
		})).Return(nil)

		u, err := NewService(repo).Update(ctx, 1, "Ann Smith", "smith@example.com")
		require.NoError(t, err)
		assert.Equal(t, "smith@example.com", u.Email)
		repo.AssertExpectations(t)
	})

	t.Run("邮箱被他人占用", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("FindByID", ctx, uint(1)).Return(&User{ID: 1, Name: "Ann Lee", Email: "ann@example.com"}, nil)
		repo.On("Update", ctx, mock.Anything).Return(ErrEmailTaken)

		_, err := NewService(repo).Update(ctx, 1, "Ann Lee", "bob@example.com")
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("ID为0视为不存在", func(t *testing.T) {
		repo := new(mockRepository)
		_, err := NewService(repo).Update(ctx, 0, "Ann Lee", "ann@example.com")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestService_GetAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepository)
	dbErr := errors.New("connection refused")

	repo.On("FindByID", ctx, uint(3)).Return(nil, dbErr)
	repo.On("Delete", ctx, uint(4)).Return(ErrUserNotFound)

	svc := NewService(repo)

	_, err := svc.Get(ctx, 3)
	assert.ErrorIs(t, err, dbErr)

	_, err = svc.Get(ctx, 0)
	assert.ErrorIs(t, err, ErrUserNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, 4), ErrUserNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 0), ErrUserNotFound)
}
