package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go-portfolio-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Port    string `validate:"required,numeric"`
	GinMode string `validate:"omitempty,oneof=debug release test"`
	// Database
	DBDriver         string `validate:"required,oneof=postgres sqlite"`
	DBUrl            string `validate:"required"`
	DBMaxConns       int    `validate:"gte=1"`
	DBMinConns       int    `validate:"gte=0,ltefield=DBMaxConns"`
	DBSimpleProtocol bool
	// Seeding
	SeedEnabled bool
	SeedFile    string `validate:"omitempty,file"`
	// Web
	StaticDir          string
	FrontendURL        string   `validate:"omitempty,url"`
	CORSAllowedOrigins []string `validate:"dive,url"`
	// TrustedProxies may set X-Forwarded-For; empty means the socket address is the client
	TrustedProxies []string `validate:"dive,ip|cidr"`
	// Logging
	LogLevel string `validate:"omitempty,oneof=debug info warn warning error"`
	LogFile  string
	// Redis is optional; the write rate limiter falls back to memory without it
	RedisURL      string `validate:"omitempty,url"`
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds  int `validate:"gte=1"`
	RateLimitWriteThreshold int `validate:"gte=0"`
}

// RateLimitWindow returns the rate limit window as a duration
func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowSeconds) * time.Second
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally; ignored when the file is absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:    getEnv("PORT", "3000"),
		GinMode: getEnv("GIN_MODE", ""),
		// Database
		DBDriver:         strings.ToLower(getEnv("DATABASE_DRIVER", "sqlite")),
		DBUrl:            getEnv("DATABASE_URL", filepath.Join("data", "portfolio.db")),
		DBMaxConns:       getEnvInt("DB_MAX_CONNS", 25),
		DBMinConns:       getEnvInt("DB_MIN_CONNS", 5),
		DBSimpleProtocol: getEnvBool("DB_SIMPLE_PROTOCOL", true),
		// Seeding
		SeedEnabled: getEnvBool("SEED_ENABLED", true),
		SeedFile:    getEnv("SEED_FILE", ""),
		// Web
		StaticDir:          getEnv("STATIC_DIR", "public"),
		FrontendURL:        strings.TrimRight(getEnv("FRONTEND_URL", ""), "/"),
		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS"),
		TrustedProxies:     getEnvList("TRUSTED_PROXIES"),
		// Logging
		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogFile:  getEnv("LOG_FILE", ""),
		// Redis
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		// Rate Limiting Configuration
		RateLimitWindowSeconds:  getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitWriteThreshold: getEnvInt("RATE_LIMIT_WRITE_THRESHOLD", 30), // 0 disables
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	if cfg.DBDriver == "sqlite" && cfg.DBUrl != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(cfg.DBUrl), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory counters.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvList splits a comma separated variable, dropping blanks and trailing slashes
func getEnvList(key string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimRight(strings.TrimSpace(part), "/"); part != "" {
			out = append(out, part)
		}
	}
	return out
}
