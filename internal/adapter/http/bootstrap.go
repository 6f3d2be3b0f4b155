package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"taskapp/internal/adapter/cache/memory"
	"taskapp/internal/adapter/cache/redis"
	"taskapp/internal/adapter/database/postgres"
	pgrepository "taskapp/internal/adapter/database/postgres/repository"
	"taskapp/internal/adapter/database/sqlite"
	"taskapp/internal/adapter/database/sqlite/repository"
	"taskapp/internal/adapter/http/routes"
	"taskapp/internal/adapter/token"
	"taskapp/internal/core/port"
	"taskapp/internal/core/telemetry"
	"taskapp/internal/shared"
	"taskapp/pkg/config"
)

// StartServerWithConfig wires the storage, cache and token adapters from
// the config and serves until the listener fails or the process exits. A
// non-empty DATABASE_URL selects the postgres adapter, otherwise sqlite.
func StartServerWithConfig(metrics *shared.AppMetrics, logger *shared.AppLogger, cfg *config.AppConfig) {
	var (
		userRepo port.UserRepository
		taskRepo port.TaskRepository
	)

	if cfg.DatabaseURL != "" {
		db, err := postgres.NewDB(cfg.DatabaseURL)

		if err != nil {
			slog.Error("Failed to open postgres", "error", err)
			return
		}
		defer db.Close()

		userRepo = pgrepository.NewUserRepository(db)
		taskRepo = pgrepository.NewTaskRepository(db)
	} else {
		db, err := sqlite.NewDB(cfg.DatabasePath)

		if err != nil {
			slog.Error("Failed to open sqlite", "error", err)
			return
		}
		defer db.Close()

		probe := telemetry.NewOTELProbe(slog.Default())

		userRepo = repository.NewUserRepository(db, probe)
		taskRepo = repository.NewTaskRepository(db, probe)
	}

	cacheRepo := buildCache(cfg)
	defer cacheRepo.Close()

	tokens := token.NewJWT(cfg.JWTSecret)

	container := NewContainer(userRepo, taskRepo, tokens, logger)

	router := routes.SetupRouterWithConfig(routes.HandlersConfig{
		UserHandler: container.UserHandler,
		TaskHandler: container.TaskHandler,
		AuthHandler: container.AuthHandler,
	}, metrics, logger, cfg, tokens, cacheRepo)

	slog.Info("Server starting",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"rate_limit_enabled", cfg.RateLimitEnabled,
		"response_cache_enabled", cfg.ResponseCacheEnabled)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("Server failed to start", "error", err)
	}
}

func buildCache(cfg *config.AppConfig) port.CacheRepository {
	if cfg.RedisAddr == "" {
		return memory.NewCacheRepository()
	}

	cacheRepo, err := redis.NewCacheRepository(context.Background(), cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	if err != nil {
		slog.Error("Failed to connect to redis, falling back to memory cache", "error", err)
		return memory.NewCacheRepository()
	}

	return cacheRepo
}
