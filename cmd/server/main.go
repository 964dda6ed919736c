package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"

	redis_cache "blogging-service/internal/cache/redis"
	"blogging-service/internal/config"
	delivery_http "blogging-service/internal/delivery/http"
	auth_http "blogging-service/internal/delivery/http/auth"
	category_http "blogging-service/internal/delivery/http/category"
	comment_http "blogging-service/internal/delivery/http/comment"
	post_http "blogging-service/internal/delivery/http/post"
	metrics_server "blogging-service/internal/delivery/metrics"
	"blogging-service/internal/logger"
	prometheus_metrics "blogging-service/internal/metrics/prometheus"
	category_postgres "blogging-service/internal/repository/category/postgres"
	comment_postgres "blogging-service/internal/repository/comment/postgres"
	post_postgres "blogging-service/internal/repository/post/postgres"
	"blogging-service/internal/repository/postgres"
	user_postgres "blogging-service/internal/repository/user/postgres"
	auth_service "blogging-service/internal/service/auth"
	category_service "blogging-service/internal/service/category"
	comment_service "blogging-service/internal/service/comment"
	post_service "blogging-service/internal/service/post"
)

func main() {
	cfg := config.MustLoad()
	dsn := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DbName)
	ctx := context.Background()
	log := logger.New(cfg.Env)

	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := runMigrations(dsn, cfg.Database.MigrationsPath); err != nil {
		log.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Error("Failed to parse postgres poolConfig", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Error("Failed to create postgres pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	log.Info("Connecting to Redis",
		slog.String("address", cfg.Redis.Address),
		slog.Int("port", cfg.Redis.Port),
		slog.Int("db", cfg.Redis.DB))
	redisClient, err := redis_cache.NewClient(cfg.Redis, log)
	if err != nil {
		log.Error("Failed to create Redis client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", slog.String("error", err.Error()))
		}
	}()

	metrics := prometheus_metrics.NewPrometheusMetricsProvider()
	metrics.SetServiceHealth(true)

	sessionCache := redis_cache.NewSessionCache(redisClient, log)

	unitOfWork := postgres.NewPostgresUOW(pool, log)
	postRepo := post_postgres.NewPostRepository(pool, log)
	commentRepo := comment_postgres.NewCommentRepository(pool, log)
	categoryRepo := category_postgres.NewCategoryRepository(pool, log)
	userRepo := user_postgres.NewUserRepository(pool, log)

	postService := post_service.NewPostService(postRepo, commentRepo, categoryRepo, userRepo, unitOfWork, metrics, log)
	commentService := comment_service.NewCommentService(commentRepo, postRepo, metrics, log)
	categoryService := category_service.NewCategoryService(categoryRepo, log)
	authService := auth_service.NewAuthService(userRepo, sessionCache, cfg.Session.TTL, metrics, log)

	validate := validator.New()

	router := delivery_http.NewRouter(
		post_http.NewListPostsHandler(postService, log),
		post_http.NewPostDetailHandler(postService, commentService, validate, log),
		post_http.NewCreatePostHandler(postService, validate, log),
		post_http.NewEditPostHandler(postService, validate, log),
		post_http.NewUserPostsHandler(postService, log),
		post_http.NewQueryHandler(postService, log),
		comment_http.NewCommentsHandler(commentService, validate, log),
		category_http.NewCategoriesHandler(categoryService, log),
		auth_http.NewRegisterHandler(authService, validate, cfg.Session, log),
		auth_http.NewLoginHandler(authService, validate, cfg.Session, log),
		auth_http.NewLogoutHandler(authService, cfg.Session, log),
	)

	httpServer := delivery_http.NewServer(
		router,
		authService,
		metrics,
		cfg.HTTPServer.TemplatesDir,
		cfg.Session.CookieName,
		cfg.HTTPServer.Address,
		cfg.HTTPServer.Port,
		log,
	)

	metricsServer := metrics_server.NewMetricsServer(cfg.Prometheus.Address, cfg.Prometheus.Port, log)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	done := make(chan bool, 1)
	metricsDone := make(chan bool, 1)

	go func() {
		if err := httpServer.Run(); err != nil {
			log.Error("HTTP server error", slog.String("error", err.Error()))
		}
		done <- true
	}()

	go func() {
		if err := metricsServer.Run(); err != nil {
			log.Error("Metrics server error", slog.String("error", err.Error()))
		}
		metricsDone <- true
	}()

	<-quit
	log.Info("Shutting down servers...")

	metrics.SetServiceHealth(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Metrics server shutdown error", slog.String("error", err.Error()))
	}

	<-done
	<-metricsDone

	log.Info("Server exited")
}

func runMigrations(dsn, path string) error {
	m, err := migrate.New("file://"+path, dsn)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer func() {
		_, _ = m.Close()
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}
