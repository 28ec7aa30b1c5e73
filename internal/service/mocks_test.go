package service

import (
	"Inkpot/internal/model"
	"Inkpot/internal/repo"
	"context"

	"github.com/stretchr/testify/mock"
)

// мок для repo.UserRepository
type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	args := m.Called(ctx, login)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) ListUsers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.User); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

// мок для repo.BlogRepository
type mockBlogRepo struct{ mock.Mock }

func (m *mockBlogRepo) GetByUserID(ctx context.Context, userID int64) (*model.BlogInfo, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).(*model.BlogInfo); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBlogRepo) Create(ctx context.Context, blog *model.Blog) error {
	return m.Called(ctx, blog).Error(0)
}

func (m *mockBlogRepo) UpdateSettings(ctx context.Context, userID int64, title, displayName string) error {
	return m.Called(ctx, userID, title, displayName).Error(0)
}

var _ repo.BlogRepository = (*mockBlogRepo)(nil)

// мок для repo.ArticleRepository
type mockArticleRepo struct{ mock.Mock }

func (m *mockArticleRepo) ListByBlog(ctx context.Context, blogID int64) ([]model.Article, error) {
	args := m.Called(ctx, blogID)
	if v, ok := args.Get(0).([]model.Article); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockArticleRepo) GetByID(ctx context.Context, id int64) (*model.Article, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Article); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockArticleRepo) Create(ctx context.Context, article *model.Article) error {
	return m.Called(ctx, article).Error(0)
}

func (m *mockArticleRepo) Update(ctx context.Context, blogID, id int64, updates map[string]any) (bool, error) {
	args := m.Called(ctx, blogID, id, updates)
	return args.Bool(0), args.Error(1)
}

func (m *mockArticleRepo) SetCategory(ctx context.Context, blogID, id int64, category string) (bool, error) {
	args := m.Called(ctx, blogID, id, category)
	return args.Bool(0), args.Error(1)
}

func (m *mockArticleRepo) Delete(ctx context.Context, blogID, id int64) (bool, error) {
	args := m.Called(ctx, blogID, id)
	return args.Bool(0), args.Error(1)
}

var _ repo.ArticleRepository = (*mockArticleRepo)(nil)
