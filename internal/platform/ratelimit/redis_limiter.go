package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter implements a fixed-window rate limit backed by Redis.
// Each key gets a counter that expires after the window; the first INCR
// of a window sets the TTL.
type RedisLimiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
	prefix string
}

// RedisLimiterがLimiterを実装していることをコンパイル時に検証します。
var _ Limiter = (*RedisLimiter)(nil)

// NewRedisLimiter creates a limiter allowing limit calls per window per key.
// If prefix is empty, it uses "ratelimit".
func NewRedisLimiter(rdb *redis.Client, limit int, window time.Duration, prefix string) *RedisLimiter {
	if prefix == "" {
		prefix = "ratelimit"
	}
	return &RedisLimiter{
		rdb:    rdb,
		limit:  limit,
		window: window,
		prefix: prefix,
	}
}

// Allow increments the key's window counter and compares it to the limit.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := fmt.Sprintf("%s:%s", l.prefix, key)

	n, err := l.rdb.Incr(ctx, k).Result()
	if err != nil {
		return false, err
	}
	// ウィンドウの最初の呼び出しでTTLを設定する
	if n == 1 {
		if err := l.rdb.Expire(ctx, k, l.window).Err(); err != nil {
			return false, err
		}
	}
	return n <= int64(l.limit), nil
}
