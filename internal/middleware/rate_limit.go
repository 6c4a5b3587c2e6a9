package middleware

import (
	"context"
	"net/http"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"

	"github.com/onRAM-ai/gcg-portal/internal/domain"
)

type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimit throttles per caller: by user id when authenticated, by client
// IP otherwise. A limiter backend error fails open so a cache outage never
// takes the API down with it.
func RateLimit(rl RateLimiter, log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		key := c.ClientIP()
		if sess := Session(c); sess != nil {
			key = sess.UserID
		}

		allowed, err := rl.Allow(c.Request.Context(), key)
		if err != nil {
			log.Warn("rate limiter unavailable, failing open",
				logger.String("error", err.Error()),
			)
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, ginext.H{"error": domain.ErrRateLimited.Error()})
			return
		}
		c.Next()
	}
}
