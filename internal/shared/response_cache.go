package shared

import (
	"bytes"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"taskapp/internal/core/port"
	"taskapp/pkg/tracing"
)

// ResponseCacheConfig configures caching for one route.
type ResponseCacheConfig struct {
	TTL     time.Duration
	Enabled bool
}

// ResponseCache serves short-lived cached GET responses out of the cache
// port, so the backend can be the in-process store or redis.
type ResponseCache struct {
	store   port.CacheRepository
	config  map[string]ResponseCacheConfig
	logger  *AppLogger
	metrics *AppMetrics
}

// CachedResponse is the stored representation of a response.
type CachedResponse struct {
	StatusCode int                 `json:"status_code"`
	Headers    map[string][]string `json:"headers"`
	Body       []byte              `json:"body"`
	Timestamp  time.Time           `json:"timestamp"`
}

func NewResponseCache(store port.CacheRepository, logger *AppLogger, metrics *AppMetrics) *ResponseCache {
	configs := map[string]ResponseCacheConfig{
		"/api/v1/tasks": {
			TTL:     3 * time.Second,
			Enabled: true,
		},
		"default": {
			TTL:     1 * time.Second,
			Enabled: false,
		},
	}

	return &ResponseCache{
		store:   store,
		config:  configs,
		logger:  logger,
		metrics: metrics,
	}
}

func (rc *ResponseCache) CacheMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != "GET" {
			c.Next()
			return
		}

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		config, exists := rc.config[path]
		if !exists {
			config = rc.config["default"]
		}

		if !config.Enabled {
			c.Next()
			return
		}

		cacheKey := rc.generateCacheKey(c, path)

		if cached, ok := rc.lookup(c, cacheKey); ok {
			_, span := tracing.CreateChildSpan(c.Request.Context(), "cache.response.hit", []attribute.KeyValue{
				attribute.String("cache.key", cacheKey),
				attribute.String("cache.path", path),
				attribute.String("cache.age", time.Since(cached.Timestamp).String()),
			})
			defer span.End()

			span.SetAttributes(
				attribute.Int("cache.status_code", cached.StatusCode),
				attribute.Int("cache.body_size", len(cached.Body)),
			)

			if rc.metrics != nil {
				rc.metrics.RecordCacheHit(c.Request.Context(), path)
			}

			rc.logger.Debug(c.Request.Context(), "Cache hit",
				zap.String("path", path),
				zap.String("cache_key", cacheKey),
				zap.Duration("age", time.Since(cached.Timestamp)))

			for key, values := range cached.Headers {
				for _, value := range values {
					c.Header(key, value)
				}
			}

			c.Header("X-Cache", "HIT")
			c.Header("X-Cache-Age", fmt.Sprintf("%.0f", time.Since(cached.Timestamp).Seconds()))

			c.Data(cached.StatusCode, "application/json", cached.Body)
			c.Abort()
			return
		}

		ctx, span := tracing.CreateChildSpan(c.Request.Context(), "cache.response.miss", []attribute.KeyValue{
			attribute.String("cache.key", cacheKey),
			attribute.String("cache.path", path),
		})
		defer span.End()

		if rc.metrics != nil {
			rc.metrics.RecordCacheMiss(c.Request.Context(), path)
		}

		writer := &responseWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
		}
		c.Writer = writer

		c.Next()

		if writer.statusCode >= 200 && writer.statusCode < 300 {
			cachedResp := CachedResponse{
				StatusCode: writer.statusCode,
				Headers:    writer.Header(),
				Body:       writer.body.Bytes(),
				Timestamp:  time.Now(),
			}

			payload, err := json.Marshal(cachedResp)
			if err != nil {
				return
			}

			if err := rc.store.Set(ctx, cacheKey, payload, config.TTL); err != nil {
				rc.logger.Error(ctx, "Cache store failed",
					zap.String("cache_key", cacheKey),
					zap.Error(err))
				return
			}

			c.Header("X-Cache", "MISS")
		}
	}
}

func (rc *ResponseCache) lookup(c *gin.Context, cacheKey string) (CachedResponse, bool) {
	var cached CachedResponse

	payload, err := rc.store.Get(c.Request.Context(), cacheKey)
	if err != nil || payload == nil {
		return cached, false
	}

	if err := json.Unmarshal(payload, &cached); err != nil {
		return cached, false
	}

	return cached, true
}

// generateCacheKey keys on path, query string and caller identity.
func (rc *ResponseCache) generateCacheKey(c *gin.Context, path string) string {
	keyParts := []string{path}

	if c.Request.URL.RawQuery != "" {
		keyParts = append(keyParts, c.Request.URL.RawQuery)
	}

	if email, exists := c.Get("x-user-email"); exists {
		keyParts = append(keyParts, fmt.Sprintf("user_%v", email))
	} else {
		keyParts = append(keyParts, fmt.Sprintf("ip_%s", GetClientIP(c)))
	}

	keyString := strings.Join(keyParts, "|")
	hash := md5.Sum([]byte(keyString))

	return fmt.Sprintf("cache:%s:%x", path, hash)
}

// InvalidateCache drops every cached response for a path.
func (rc *ResponseCache) InvalidateCache(c *gin.Context, path string) {
	if err := rc.store.DeleteByPrefix(c.Request.Context(), "cache:"+path); err != nil {
		rc.logger.Error(c.Request.Context(), "Cache invalidation failed",
			zap.String("path", path),
			zap.Error(err))
	}
}

// SetConfig overrides caching for one route.
func (rc *ResponseCache) SetConfig(path string, config ResponseCacheConfig) {
	rc.config[path] = config
}

type responseWriter struct {
	gin.ResponseWriter
	body       *bytes.Buffer
	statusCode int
}

func (w *responseWriter) Write(data []byte) (int, error) {
	w.body.Write(data)
	return w.ResponseWriter.Write(data)
}

func (w *responseWriter) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *responseWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
