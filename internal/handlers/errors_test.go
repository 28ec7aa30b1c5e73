package handlers_test

import (
	"Inkpot/internal/handlers"
	"Inkpot/internal/model"
	"Inkpot/internal/repo"
	"Inkpot/internal/service"
	"Inkpot/internal/view"
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Local light mocks
type hMockUserRepo struct{ mock.Mock }

func (m *hMockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockUserRepo) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	args := m.Called(ctx, login)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockUserRepo) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockUserRepo) ListUsers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.User); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*hMockUserRepo)(nil)

type hMockBlogRepo struct{ mock.Mock }

func (m *hMockBlogRepo) GetByUserID(ctx context.Context, userID int64) (*model.BlogInfo, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).(*model.BlogInfo); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockBlogRepo) Create(ctx context.Context, blog *model.Blog) error {
	return m.Called(ctx, blog).Error(0)
}
func (m *hMockBlogRepo) UpdateSettings(ctx context.Context, userID int64, title, displayName string) error {
	return m.Called(ctx, userID, title, displayName).Error(0)
}

var _ repo.BlogRepository = (*hMockBlogRepo)(nil)

type hMockArticleRepo struct{ mock.Mock }

func (m *hMockArticleRepo) ListByBlog(ctx context.Context, blogID int64) ([]model.Article, error) {
	args := m.Called(ctx, blogID)
	if v, ok := args.Get(0).([]model.Article); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockArticleRepo) GetByID(ctx context.Context, id int64) (*model.Article, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Article); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockArticleRepo) Create(ctx context.Context, article *model.Article) error {
	return m.Called(ctx, article).Error(0)
}
func (m *hMockArticleRepo) Update(ctx context.Context, blogID, id int64, updates map[string]any) (bool, error) {
	args := m.Called(ctx, blogID, id, updates)
	return args.Bool(0), args.Error(1)
}
func (m *hMockArticleRepo) SetCategory(ctx context.Context, blogID, id int64, category string) (bool, error) {
	args := m.Called(ctx, blogID, id, category)
	return args.Bool(0), args.Error(1)
}
func (m *hMockArticleRepo) Delete(ctx context.Context, blogID, id int64) (bool, error) {
	args := m.Called(ctx, blogID, id)
	return args.Bool(0), args.Error(1)
}

var _ repo.ArticleRepository = (*hMockArticleRepo)(nil)

func newMockRouter(t *testing.T, ur *hMockUserRepo, br *hMockBlogRepo, ar *hMockArticleRepo) http.Handler {
	t.Helper()
	renderer, err := view.NewRenderer()
	require.NoError(t, err)
	cfg := testConfig()
	h := handlers.NewHandler(handlers.Services{
		Users:    service.NewUserService(ur),
		Blogs:    service.NewBlogService(br),
		Articles: service.NewArticleService(ar, cfg.SummaryLength),
		Ping:     func(context.Context) error { return errors.New("db down") },
	}, renderer, zap.NewNop().Sugar(), cfg)
	return h.Router
}

func TestDatastoreFailures_ErrorPageWithCode(t *testing.T) {
	user := &model.User{ID: 7, Login: "alice", DisplayName: "Alice"}
	blog := &model.BlogInfo{ID: 3, Title: "Blog", UserID: 7, DisplayName: "Alice"}
	boom := errors.New("db down")

	cases := []struct {
		name   string
		setup  func(ur *hMockUserRepo, br *hMockBlogRepo, ar *hMockArticleRepo)
		path   string
		code   string
	}{
		{
			name: "user lookup",
			setup: func(ur *hMockUserRepo, _ *hMockBlogRepo, _ *hMockArticleRepo) {
				ur.On("GetUserByID", mock.Anything, int64(7)).Return(nil, boom)
			},
			path: "/author", code: "G001",
		},
		{
			name: "blog lookup",
			setup: func(ur *hMockUserRepo, br *hMockBlogRepo, _ *hMockArticleRepo) {
				ur.On("GetUserByID", mock.Anything, int64(7)).Return(user, nil)
				br.On("GetByUserID", mock.Anything, int64(7)).Return(nil, boom)
			},
			path: "/author", code: "G002",
		},
		{
			name: "article listing",
			setup: func(ur *hMockUserRepo, br *hMockBlogRepo, ar *hMockArticleRepo) {
				ur.On("GetUserByID", mock.Anything, int64(7)).Return(user, nil)
				br.On("GetByUserID", mock.Anything, int64(7)).Return(blog, nil)
				ar.On("ListByBlog", mock.Anything, int64(3)).Return(nil, boom)
			},
			path: "/author", code: "A001",
		},
		{
			name: "article ownership lookup",
			setup: func(ur *hMockUserRepo, br *hMockBlogRepo, ar *hMockArticleRepo) {
				ur.On("GetUserByID", mock.Anything, int64(7)).Return(user, nil)
				br.On("GetByUserID", mock.Anything, int64(7)).Return(blog, nil)
				ar.On("GetByID", mock.Anything, int64(5)).Return(nil, boom)
			},
			path: "/author/article/5", code: "G003",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ur, br, ar := &hMockUserRepo{}, &hMockBlogRepo{}, &hMockArticleRepo{}
			tc.setup(ur, br, ar)
			app := &testApp{router: newMockRouter(t, ur, br, ar)}

			rec := app.get(t, tc.path, sessionCookie(t, 7))
			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.code)
			assert.Contains(t, rec.Body.String(), "Incident:")
			assert.NotContains(t, rec.Body.String(), "db down")

			ur.AssertExpectations(t)
			br.AssertExpectations(t)
			ar.AssertExpectations(t)
		})
	}
}

func TestHealthz_DatabaseDown(t *testing.T) {
	app := &testApp{router: newMockRouter(t, &hMockUserRepo{}, &hMockBlogRepo{}, &hMockArticleRepo{})}

	rec := app.get(t, "/healthz", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
