package handlers_test

import (
	"Inkpot/internal/config"
	"Inkpot/internal/handlers"
	"Inkpot/internal/middleware"
	"Inkpot/internal/model"
	"Inkpot/internal/repo"
	"Inkpot/internal/service"
	"Inkpot/internal/view"
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

// testApp, роутер поверх настоящей in-memory SQLite
type testApp struct {
	db       *gorm.DB
	router   http.Handler
	users    *service.UserService
	blogs    *service.BlogService
	articles *service.ArticleService
}

func testConfig() *config.Config {
	return &config.Config{
		AuthSecret:    testSecret,
		BaseURL:       "localhost:8081",
		DisplayTZ:     "UTC",
		SummaryLength: 100,
		SessionTTL:    time.Hour,
	}
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_pragma=foreign_keys(1)"
	db, err := repo.InitDB(dsn)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	renderer, err := view.NewRenderer()
	require.NoError(t, err)

	cfg := testConfig()
	app := &testApp{
		db:       db,
		users:    service.NewUserService(repo.NewUserRepository(db)),
		blogs:    service.NewBlogService(repo.NewBlogRepository(db)),
		articles: service.NewArticleService(repo.NewArticleRepository(db), cfg.SummaryLength),
	}
	sqlDB, err := db.DB()
	require.NoError(t, err)

	h := handlers.NewHandler(handlers.Services{
		Users:    app.users,
		Blogs:    app.blogs,
		Articles: app.articles,
		Ping:     sqlDB.PingContext,
	}, renderer, zap.NewNop().Sugar(), cfg)
	app.router = h.Router
	return app
}

// mkUser регистрирует автора и возвращает cookie его сессии.
func (a *testApp) mkUser(t *testing.T, login string) (*model.User, *http.Cookie) {
	t.Helper()
	u, err := a.users.Register(context.Background(), login, "pass", "Name "+login)
	require.NoError(t, err)
	return u, sessionCookie(t, u.ID)
}

func (a *testApp) mkBlog(t *testing.T, user *model.User, title string) *model.BlogInfo {
	t.Helper()
	_, err := a.blogs.Create(context.Background(), user.ID, title)
	require.NoError(t, err)
	info, err := a.blogs.GetByUser(context.Background(), user.ID)
	require.NoError(t, err)
	return info
}

func (a *testApp) mkArticle(t *testing.T, blogID int64, category, title, body string) *model.Article {
	t.Helper()
	art, err := a.articles.Create(context.Background(), blogID, service.ArticleInput{
		Category: category,
		Title:    title,
		Body:     body,
	})
	require.NoError(t, err)
	return art
}

func (a *testApp) get(t *testing.T, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) post(t *testing.T, path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, userID int64) *http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	require.NoError(t, middleware.SetLoginCookie(rec, userID, testSecret))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func countRows(t *testing.T, db *gorm.DB, m any, where string, args ...any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(m).Where(where, args...).Count(&n).Error)
	return n
}
