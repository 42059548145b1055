package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"coursepilot/config"
	"coursepilot/pkg/log"
)

// Middleware bundles the cross-cutting HTTP middlewares.
type Middleware interface {
	RateLimit() gin.HandlerFunc
	Idempotency() gin.HandlerFunc
}

type middleware struct {
	l        log.Logger
	cfg      config.RateLimitConfig
	limiters *expirable.LRU[string, *rate.Limiter]
	replies  *expirable.LRU[string, cachedResponse]
}

// New creates the middleware set from the rate-limit configuration.
func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	ttl, err := time.ParseDuration(cfg.IdempotencyTTL)
	if err != nil || ttl <= 0 {
		ttl = 10 * time.Minute
	}

	size := cfg.IdempotencyCacheSize
	if size <= 0 {
		size = 1024
	}

	return &middleware{
		l:        l,
		cfg:      cfg,
		limiters: expirable.NewLRU[string, *rate.Limiter](size, nil, 5*time.Minute),
		replies:  expirable.NewLRU[string, cachedResponse](size, nil, ttl),
	}
}
