package middleware

import (
	"github.com/gauravmalhotra04/raiden-ai/config"
	"github.com/gauravmalhotra04/raiden-ai/pkg/log"
)

type Middleware struct {
	l           log.Logger
	rateLimiter *rateLimiter
	cors        config.CORSConfig
}

func New(l log.Logger, cfg *config.Config) Middleware {
	return Middleware{
		l:           l,
		rateLimiter: newRateLimiter(cfg.RateLimit.PerMin),
		cors:        cfg.CORS,
	}
}
