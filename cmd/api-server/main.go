package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"animedrop/database"
	"animedrop/internal/cache"
	"animedrop/internal/config"
	"animedrop/internal/http-api/handler"
	"animedrop/internal/http-api/middleware"
	"animedrop/internal/http-api/repository"
	"animedrop/internal/http-api/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	// The API works without redis; reads just skip the cache.
	c, err := cache.New(cfg.RedisURL, cfg.RedisPassword, cfg.CacheTTL, logger)
	if err != nil {
		logger.Warn("redis unavailable, caching disabled", "error", err)
		c = nil
	} else {
		defer c.Close()
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	animeRepo := repository.NewAnimeRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	followRepo := repository.NewFollowRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, refreshTokenRepo, cfg)
	userService := service.NewUserService(userRepo, followRepo, animeRepo)
	animeService := service.NewAnimeService(animeRepo, c, logger)
	reviewService := service.NewReviewService(reviewRepo, animeRepo, userRepo, notificationRepo, c, logger)
	socialService := service.NewSocialService(userRepo, followRepo, notificationRepo, logger)
	notificationService := service.NewNotificationService(notificationRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, userService)
	animeHandler := handler.NewAnimeHandler(animeService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	userHandler := handler.NewUserHandler(userService, socialService)
	notificationHandler := handler.NewNotificationHandler(notificationService)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).Middleware())

	r.GET("/check-conn", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "API is alive and database connected"})
	})

	authMW := middleware.AuthMiddleware(authService)

	api := r.Group("/api")
	{
		authHandler.RegisterRoutes(api.Group("/auth"), authMW)

		anime := api.Group("/anime")
		animeHandler.RegisterRoutes(anime, authMW)
		reviewHandler.RegisterRoutes(anime, authMW)

		userHandler.RegisterRoutes(api.Group("/users", authMW))
		notificationHandler.RegisterRoutes(api.Group("/notifications", authMW))
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: r,
	}

	go func() {
		logger.Info("server running", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "error", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
