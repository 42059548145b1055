package middleware

import (
	"bytes"

	"github.com/gin-gonic/gin"
)

const idempotencyHeader = "Idempotency-Key"

type cachedResponse struct {
	status      int
	contentType string
	body        []byte
}

type bodyRecorder struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the cached response for a repeated Idempotency-Key so
// retried extraction requests do not produce divergent results.
func (m *middleware) Idempotency() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(idempotencyHeader)
		if key == "" {
			c.Next()
			return
		}

		if cached, ok := m.replies.Get(key); ok {
			m.l.Infof(c.Request.Context(), "middleware.Idempotency: replay key=%s", key)
			c.Data(cached.status, cached.contentType, cached.body)
			c.Abort()
			return
		}

		rec := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = rec

		c.Next()

		// Only successful responses are safe to replay.
		if rec.Status() >= 200 && rec.Status() < 300 {
			m.replies.Add(key, cachedResponse{
				status:      rec.Status(),
				contentType: rec.Header().Get("Content-Type"),
				body:        rec.buf.Bytes(),
			})
		}
	}
}
