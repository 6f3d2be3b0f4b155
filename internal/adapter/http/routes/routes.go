package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskapp/internal/adapter/http/handler"
	"taskapp/internal/adapter/http/middleware"
	"taskapp/internal/core/port"
	"taskapp/internal/shared"
	"taskapp/pkg/config"
)

type HandlersConfig struct {
	UserHandler *handler.UserHandler
	TaskHandler *handler.TaskHandler
	AuthHandler *handler.AuthHandler
}

func SetupRouterWithConfig(handlers HandlersConfig, metrics *shared.AppMetrics, logger *shared.AppLogger, cfg *config.AppConfig, tokens port.TokenIssuer, cache port.CacheRepository) *gin.Engine {
	if gin.Mode() == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	shared.SetupGinMiddleware(router, cfg.ServiceName, metrics, logger)

	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	if cfg.RateLimitEnabled {
		limiter := shared.NewRateLimiter(logger, metrics, cfg.RateLimitConfigs)
		router.Use(limiter.RateLimitMiddleware())
	}

	var responseCache *shared.ResponseCache

	if cfg.ResponseCacheEnabled && cache != nil {
		responseCache = shared.NewResponseCache(cache, logger, metrics)
	}

	setupRoutes(router, handlers, tokens, responseCache)

	return router
}

// SetupRouterForTests wires the routes without the telemetry, rate-limit
// and cache middleware.
func SetupRouterForTests(handlers HandlersConfig, tokens port.TokenIssuer) *gin.Engine {
	if gin.Mode() == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	setupRoutes(router, handlers, tokens, nil)

	return router
}

func setupRoutes(router *gin.Engine, handlers HandlersConfig, tokens port.TokenIssuer, responseCache *shared.ResponseCache) {
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API is running")
	})

	v1 := router.Group("/api/v1")

	if handlers.UserHandler != nil {
		v1.POST("/users", handlers.UserHandler.CreateUser)
		v1.GET("/users/email", handlers.UserHandler.FindByEmail)
	}

	if handlers.AuthHandler != nil {
		v1.POST("/auth/login", handlers.AuthHandler.Login)
	}

	if handlers.TaskHandler != nil {
		protected := v1.Group("/tasks")
		protected.Use(middleware.JwtAuthMiddleware(tokens))

		if responseCache != nil {
			protected.Use(responseCache.CacheMiddleware())
		}

		protected.POST("", handlers.TaskHandler.CreateTask)
		protected.GET("", handlers.TaskHandler.FindAllByUser)
		protected.GET("/:id", handlers.TaskHandler.FindByID)
		protected.PUT("/:id", handlers.TaskHandler.UpdateTask)
		protected.DELETE("/:id", handlers.TaskHandler.DeleteTask)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
