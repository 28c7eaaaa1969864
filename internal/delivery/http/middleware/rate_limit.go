package middleware

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Custom key extractor (default: IP-based)
	KeyFunc func(*gin.Context) string
	// Key prefix for Redis (default: "rl:ip:")
	KeyPrefix string
	// Redis is optional; nil means in-memory counters
	Redis *goredis.Client
}

// memoryStore holds one token bucket per key for a single middleware instance.
// A bucket holds Limit tokens and refills completely over Window.
type memoryStore struct {
	limiters sync.Map
}

// Lua script for atomic increment with TTL on first set
// KEYS[1] = counter key
// ARGV[1] = TTL in seconds
// Returns: [current_count, ttl_remaining]
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

// WriteRateLimitConfig limits mutating API calls per client IP
func WriteRateLimitConfig(limit int, window time.Duration, redis *goredis.Client) RateLimitConfig {
	return RateLimitConfig{
		Limit:     limit,
		Window:    window,
		KeyPrefix: "rl:write:",
		Redis:     redis,
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
	}
}

// RateLimitMiddleware creates a rate limiting middleware with the given config.
// Uses Redis when configured and falls back to memory when Redis errors.
// Rejections are attached with c.Error and rendered by ErrorHandler.
func RateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	store := &memoryStore{}
	if config.KeyFunc == nil {
		config.KeyFunc = func(c *gin.Context) string { return c.ClientIP() }
	}
	if config.KeyPrefix == "" {
		config.KeyPrefix = "rl:ip:"
	}

	return func(c *gin.Context) {
		fullKey := config.KeyPrefix + config.KeyFunc(c)
		now := time.Now()

		var count int
		var resetAt time.Time

		if config.Redis != nil {
			var err error
			count, resetAt, err = checkRateLimitRedis(c.Request.Context(), config.Redis, fullKey, config)
			if err != nil {
				logger.Log.Warn("rate limit redis error, using memory", "request_id", GetRequestID(c), "error", err)
				count, resetAt = store.hit(fullKey, config, now)
			}
		} else {
			count, resetAt = store.hit(fullKey, config, now)
		}

		if count > config.Limit {
			retryAfter := int(time.Until(resetAt).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}

			c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			logger.Log.Warn("rate limit exceeded",
				"request_id", GetRequestID(c),
				"client_ip", c.ClientIP(),
				"path", c.FullPath(),
			)

			c.Error(apperror.TooManyRequests("Rate limit exceeded. Please try again later."))
			c.Abort()
			return
		}

		remaining := config.Limit - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))

		c.Next()
	}
}

// checkRateLimitRedis checks rate limit using Redis with atomic Lua script
func checkRateLimitRedis(ctx context.Context, client *goredis.Client, key string, config RateLimitConfig) (int, time.Time, error) {
	ttlSeconds := int(config.Window.Seconds())

	result, err := client.Eval(ctx, rateLimitLuaScript, []string{key}, ttlSeconds).Result()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("redis rate limit eval failed: %w", err)
	}

	arr, ok := result.([]interface{})
	if !ok || len(arr) < 2 {
		return 0, time.Time{}, fmt.Errorf("unexpected redis result format")
	}

	count, _ := arr[0].(int64)
	ttl, _ := arr[1].(int64)

	return int(count), time.Now().Add(time.Duration(ttl) * time.Second), nil
}

// hit spends one token for key and reports the request as the count-th of
// the window so both stores share the same header math
func (s *memoryStore) hit(key string, config RateLimitConfig, now time.Time) (int, time.Time) {
	limit := config.Limit
	if limit < 1 {
		limit = 1
	}
	every := config.Window / time.Duration(limit)

	limI, _ := s.limiters.LoadOrStore(key, rate.NewLimiter(rate.Every(every), limit))
	lim := limI.(*rate.Limiter)

	allowed := lim.AllowN(now, 1)
	tokens := lim.TokensAt(now)
	if tokens < 0 {
		tokens = 0
	}
	resetAt := now.Add(time.Duration((float64(limit) - tokens) * float64(every)))

	if !allowed {
		return limit + 1, resetAt
	}
	return limit - int(tokens), resetAt
}
