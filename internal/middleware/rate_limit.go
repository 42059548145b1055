package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"coursepilot/pkg/response"
)

// RateLimit throttles requests per client IP using a token bucket.
func (m *middleware) RateLimit() gin.HandlerFunc {
	perMin := m.cfg.RequestsPerMin
	if perMin <= 0 {
		perMin = 60
	}
	burst := m.cfg.Burst
	if burst <= 0 {
		burst = perMin / 6
		if burst < 1 {
			burst = 1
		}
	}

	return func(c *gin.Context) {
		ip := extractIP(c)

		limiter, ok := m.limiters.Get(ip)
		if !ok {
			limiter = rate.NewLimiter(rate.Limit(float64(perMin)/60.0), burst)
			m.limiters.Add(ip, limiter)
		}

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: rejected ip=%s", ip)
			response.TooManyRequests(c)
			c.Abort()
			return
		}

		c.Next()
	}
}

func extractIP(c *gin.Context) string {
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[0])
	}

	if real := c.GetHeader("X-Real-IP"); real != "" {
		return strings.TrimSpace(real)
	}

	host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return host
}
