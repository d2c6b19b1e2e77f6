package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"comment-threads/internal/auth"
	"comment-threads/internal/config"
	"comment-threads/internal/handler"
	"comment-threads/internal/infrastructure/database"
	"comment-threads/internal/logger"
	"comment-threads/internal/metrics"
	"comment-threads/internal/middleware"
	"comment-threads/internal/repository"
	"comment-threads/internal/service"
	"comment-threads/internal/session"
)

// commentStore is an opened comment repository plus its cleanup.
type commentStore struct {
	repo   repository.CommentRepository
	pinger handler.Pinger
	close  func()
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.Configure(cfg.LogLevel)

	// Open the comment store and apply migrations
	store, err := openCommentStore(context.Background(), cfg)
	if err != nil {
		logger.Fatal("Failed to open comment store",
			slog.String("driver", cfg.StoreDriver),
			slog.String("error", err.Error()))
	}
	defer store.close()

	deps := []handler.Dependency{
		{Name: "database", Pinger: store.pinger, Required: true},
	}

	// Expansion state is optional; without Redis, toggles report the store as unavailable
	var expansions session.ExpansionStore
	redisStore, err := session.NewRedisStore(cfg.RedisURL, cfg.ExpansionTTL)
	if err != nil {
		logger.Warn("Expansion state disabled",
			slog.String("error", err.Error()))
	} else {
		defer redisStore.Close()
		expansions = redisStore
		deps = append(deps, handler.Dependency{Name: "redis", Pinger: redisStore})
	}

	// Initialize services
	commentService := service.NewCommentService(store.repo, expansions, service.Options{
		MaxNestingDepth:  cfg.MaxNestingDepth,
		MaxCommentLength: cfg.MaxCommentLength,
		StoreTimeout:     cfg.StoreTimeout,
	})

	// Initialize handlers
	commentHandler := handler.NewCommentHandler(commentService)
	healthHandler := handler.NewHealthHandler(deps...)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	// URL content ids arrive percent-encoded in a single path segment
	router.UseRawPath = true
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(middleware.Identity(auth.NewTokenResolver(cfg.JWTSecret)))
	commentHandler.RegisterRoutes(v1)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort),
			slog.String("store", cfg.StoreDriver),
			slog.Int("max_nesting_depth", cfg.MaxNestingDepth))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Shutdown HTTP server; in-flight writes finish before the store closes
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}

func openCommentStore(ctx context.Context, cfg *config.Config) (*commentStore, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), 0o755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
		db, err := database.NewSQLite(ctx, database.SQLiteFileDSN(cfg.SQLitePath))
		if err != nil {
			return nil, err
		}
		if err := database.RunSQLiteMigrations(db.Writer); err != nil {
			_ = db.Close()
			return nil, err
		}

		repo := repository.NewSQLiteCommentRepository(db)
		return &commentStore{
			repo:   repo,
			pinger: repo,
			close: func() {
				if err := db.Close(); err != nil {
					logger.Error("Close sqlite", slog.String("error", err.Error()))
				}
			},
		}, nil

	default:
		poolCfg := database.PoolConfig{
			Host:              cfg.DBHost,
			Port:              cfg.DBPort,
			User:              cfg.DBUser,
			Password:          cfg.DBPassword,
			Database:          cfg.DBName,
			SSLMode:           cfg.DBSSLMode,
			MaxConns:          cfg.DBMaxConns,
			MinConns:          cfg.DBMinConns,
			MaxConnLifetime:   cfg.DBMaxConnLifetime,
			MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
			HealthCheckPeriod: cfg.DBHealthCheckPeriod,
		}
		if err := database.RunPostgresMigrations(poolCfg.URL()); err != nil {
			return nil, err
		}

		pool, err := database.NewPostgres(ctx, poolCfg)
		if err != nil {
			return nil, err
		}

		// Start database pool metrics collector
		poolStatsCollector := metrics.NewPoolStatsCollector(pool)
		poolStatsCollector.Start(15 * time.Second)

		repo := repository.NewPostgresCommentRepository(pool)
		return &commentStore{
			repo:   repo,
			pinger: repo,
			close: func() {
				poolStatsCollector.Stop()
				pool.Close()
			},
		}, nil
	}
}
