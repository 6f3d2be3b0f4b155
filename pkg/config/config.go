package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

type AppConfig struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	Port           string

	JWTSecret string

	// sqlite is the default store; a non-empty DatabaseURL switches the
	// bootstrap to the postgres adapter.
	DatabasePath string
	DatabaseURL  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	MetricsPort  string
	OTLPEndpoint string

	RateLimitEnabled     bool
	RateLimitConfigs     map[string]RateLimitConfig
	ResponseCacheEnabled bool
}

// Load reads .env when present, then the process environment. JWT_SECRET
// has no default outside tests.
func Load() (*AppConfig, error) {
	_ = godotenv.Load()

	cfg := &AppConfig{
		ServiceName:          "taskapp",
		ServiceVersion:       getEnv("SERVICE_VERSION", "1.0.0"),
		Environment:          getEnv("APP_ENV", "development"),
		Port:                 getEnv("PORT", "8080"),
		JWTSecret:            os.Getenv("JWT_SECRET"),
		DatabasePath:         getEnv("DATABASE_PATH", "database.db"),
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		RedisAddr:            os.Getenv("REDIS_ADDR"),
		RedisPassword:        os.Getenv("REDIS_PASSWORD"),
		RedisDB:              getEnvInt("REDIS_DB", 0),
		MetricsPort:          getEnv("METRICS_PORT", "9091"),
		OTLPEndpoint:         getEnv("OTLP_ENDPOINT", "localhost:4317"),
		RateLimitEnabled:     getEnvBool("RATE_LIMIT_ENABLED", true),
		RateLimitConfigs:     DefaultRateLimits(),
		ResponseCacheEnabled: getEnvBool("RESPONSE_CACHE_ENABLED", true),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	return cfg, nil
}

// DefaultConfig is the test/development wiring; no env access beyond what
// Load already did.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		ServiceName:          "taskapp",
		ServiceVersion:       "dev",
		Environment:          "development",
		Port:                 "8080",
		JWTSecret:            "development-secret",
		DatabasePath:         "database.db",
		RateLimitEnabled:     false,
		RateLimitConfigs:     DefaultRateLimits(),
		ResponseCacheEnabled: false,
	}
}

func DefaultRateLimits() map[string]RateLimitConfig {
	return map[string]RateLimitConfig{
		"POST /api/v1/users": {
			Requests: 5,
			Window:   time.Minute,
		},
		"POST /api/v1/auth/login": {
			Requests: 10,
			Window:   time.Minute,
		},
		"GET /api/v1/tasks": {
			Requests: 100,
			Window:   time.Minute,
		},
		"POST /api/v1/tasks": {
			Requests: 20,
			Window:   time.Minute,
		},
		"default": {
			Requests: 60,
			Window:   time.Minute,
		},
	}
}

func getEnv(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}

	return fallback
}

func getEnvInt(name string, fallback int) int {
	value := os.Getenv(name)

	if value == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(value)

	if err != nil {
		return fallback
	}

	return parsed
}

func getEnvBool(name string, fallback bool) bool {
	value := os.Getenv(name)

	if value == "" {
		return fallback
	}

	parsed, err := strconv.ParseBool(value)

	if err != nil {
		return fallback
	}

	return parsed
}
