// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"

	"todo_backend/internal/platform/ratelimit"
)

// NewAuthLimiter creates a Limiter for the authentication endpoints.
// If Redis is available, it returns a Redis-backed implementation so the
// window is shared across instances. Otherwise, it falls back to a
// process-local in-memory limiter.
func NewAuthLimiter(rdb *redis.Client, limit int, window time.Duration) ratelimit.Limiter {
	if rdb != nil {
		return ratelimit.NewRedisLimiter(rdb, limit, window, "ratelimit:auth")
	}
	return ratelimit.NewMemoryLimiter(limit, window)
}
