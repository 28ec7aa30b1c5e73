package main

import (
	"Inkpot/internal/config"
	"Inkpot/internal/handlers"
	"Inkpot/internal/middleware"
	"Inkpot/internal/repo"
	"Inkpot/internal/service"
	"Inkpot/internal/view"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata" // DISPLAY_TZ работает и в образах без zoneinfo

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	//context
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		sugar.Fatalw("failed to get sql.DB", "error", err)
	}
	defer sqlDB.Close()

	userService := service.NewUserService(repo.NewUserRepository(gormDB))
	blogService := service.NewBlogService(repo.NewBlogRepository(gormDB))
	articleService := service.NewArticleService(repo.NewArticleRepository(gormDB), cfg.SummaryLength)

	renderer, err := view.NewRenderer()
	if err != nil {
		sugar.Fatalw("failed to parse templates", "error", err)
	}

	h := handlers.NewHandler(handlers.Services{
		Users:    userService,
		Blogs:    blogService,
		Articles: articleService,
		Ping:     sqlDB.PingContext,
	}, renderer, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	if cfg.LocationErr != nil {
		sugar.Warnw("DISPLAY_TZ not loaded, showing dates in UTC", "tz", cfg.DisplayTZ, "error", cfg.LocationErr)
	}

	sugar.Infow("Config",
		"ServerURL", cfg.ServerURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"DisplayTZ", cfg.Location().String(),
		"SummaryLength", cfg.SummaryLength,
		"SessionTTL", cfg.SessionTTL,
	)

	srv := &http.Server{
		Addr:              addr,
		Handler:           h.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		defer stop()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			sugar.Errorw("Shutdown failed", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		sugar.Fatalw("Server failed", "error", err)
	}
	sugar.Infow("Server stopped")
}
