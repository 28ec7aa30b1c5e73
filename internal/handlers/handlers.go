package handlers

import (
	"Inkpot/internal/config"
	"Inkpot/internal/middleware"
	"Inkpot/internal/service"
	"Inkpot/internal/view"
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// Services: зависимости хендлеров. Ping используется /healthz и может быть nil.
type Services struct {
	Users    *service.UserService
	Blogs    *service.BlogService
	Articles *service.ArticleService
	Ping     func(ctx context.Context) error
}

// NewHandler разводящий для хендлеров
func NewHandler(
	services Services,
	renderer *view.Renderer,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	accountHandler := NewAccountHandler(services.Users, renderer, logger, config)
	authorHandler := NewAuthorHandler(services.Users, services.Blogs, services.Articles, renderer, logger, config)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		redirect(w, r, "/author")
	})
	r.Get("/healthz", healthz(services.Ping, logger))

	// Account routes
	r.Get("/login", accountHandler.LoginForm)
	r.Post("/login", accountHandler.Login)
	r.Get("/register", accountHandler.RegisterForm)
	r.Post("/register", accountHandler.Register)
	r.Post("/logout", accountHandler.Logout)

	// Author routes
	r.Route("/author", authorHandler.Routes)

	return &Handler{Router: r}
}

func healthz(ping func(ctx context.Context) error, logger *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ping != nil {
			if err := ping(r.Context()); err != nil {
				logger.Errorw("health check failed", "error", err)
				http.Error(w, "database unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	}
}
