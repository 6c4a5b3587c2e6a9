package cache

import (
	"context"
	"fmt"
	"time"
)

// RateLimiter is a fixed-window counter per key. It deliberately fails open:
// if Redis is unreachable the request is allowed, favouring availability over
// strict enforcement.
type RateLimiter struct {
	redis  *Redis
	limit  int
	window time.Duration
}

func NewRateLimiter(r *Redis, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{redis: r, limit: limit, window: window}
}

func rateLimitKey(key string, window time.Duration) string {
	bucket := time.Now().Unix() / int64(window.Seconds())
	return fmt.Sprintf("ratelimit:%s:%d", key, bucket)
}

// Allow reports whether the caller identified by key may proceed. The error
// return is informational only; callers treat (false, nil) as the single
// rejecting outcome.
func (l *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := rateLimitKey(key, l.window)

	pipe := l.redis.Client.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.Expire(ctx, k, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		// fail open
		return true, err
	}

	return incr.Val() <= int64(l.limit), nil
}
