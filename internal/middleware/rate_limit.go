package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"github.com/gauravmalhotra04/raiden-ai/pkg/response"
)

const (
	maxRateLimitedClients = 1000
	rateLimiterTTL        = 5 * time.Minute
)

// RateLimit rejects a client IP with 429 once it exceeds the configured
// requests per minute. A non-positive limit disables the check.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.rateLimiter == nil || m.rateLimiter.Allow(c.ClientIP()) {
			c.Next()
			return
		}
		m.l.Warnf(c.Request.Context(), "middleware.RateLimit: %s exceeded %s %s", c.ClientIP(), c.Request.Method, c.FullPath())
		response.TooManyRequests(c)
	}
}

// rateLimiter keeps one token bucket per client, dropping idle ones.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	if requestsPerMin <= 0 {
		return nil
	}
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxRateLimitedClients, nil, rateLimiterTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}

func (rl *rateLimiter) Allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}
