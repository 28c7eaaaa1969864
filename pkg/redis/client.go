package redis

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config holds Redis connection configuration
type Config struct {
	URL      string // redis://... or rediss://... for TLS
	Password string // overrides a password embedded in URL
}

// ErrNotConfigured is returned when no URL was supplied
var ErrNotConfigured = errors.New("redis: REDIS_URL not configured")

// NewClient parses cfg, connects and pings. The caller owns the client.
func NewClient(ctx context.Context, cfg Config) (*redis.Client, error) {
	if cfg.URL == "" {
		return nil, ErrNotConfigured
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("redis: invalid URL: %w", err)
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	if opts.TLSConfig != nil {
		opts.TLSConfig.MinVersion = tls.VersionTLS12
	}

	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second
	opts.PoolSize = 10
	opts.MinIdleConns = 2

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: connection failed: %w", err)
	}
	return client, nil
}
