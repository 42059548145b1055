package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"coursepilot/config"
	"coursepilot/internal/middleware"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func post(engine *gin.Engine, path, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader("{}"))
	if key != "" {
		req.Header.Set("Idempotency-Key", key)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestIdempotencyReplaysCachedResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := middleware.New(&mockLogger{}, config.RateLimitConfig{})

	calls := 0
	engine := gin.New()
	engine.POST("/extract", m.Idempotency(), func(c *gin.Context) {
		calls++
		c.JSON(http.StatusOK, gin.H{"call": calls})
	})

	first := post(engine, "/extract", "key-1")
	second := post(engine, "/extract", "key-1")

	if calls != 1 {
		t.Fatalf("handler ran %d times for one key, want 1", calls)
	}
	if second.Code != first.Code || second.Body.String() != first.Body.String() {
		t.Errorf("replay diverged: %q vs %q", second.Body.String(), first.Body.String())
	}

	// A fresh key and a keyless request both reach the handler.
	post(engine, "/extract", "key-2")
	post(engine, "/extract", "")
	if calls != 3 {
		t.Errorf("handler ran %d times, want 3", calls)
	}
}

func TestIdempotencyDoesNotCacheFailures(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := middleware.New(&mockLogger{}, config.RateLimitConfig{})

	calls := 0
	engine := gin.New()
	engine.POST("/extract", m.Idempotency(), func(c *gin.Context) {
		calls++
		c.JSON(http.StatusInternalServerError, gin.H{"call": calls})
	})

	post(engine, "/extract", "key-1")
	post(engine, "/extract", "key-1")

	if calls != 2 {
		t.Errorf("failed response was replayed: handler ran %d times, want 2", calls)
	}
}

func TestRateLimitRejectsBurst(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := middleware.New(&mockLogger{}, config.RateLimitConfig{RequestsPerMin: 60, Burst: 1})

	engine := gin.New()
	engine.POST("/extract", m.RateLimit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	if w := post(engine, "/extract", ""); w.Code != http.StatusOK {
		t.Fatalf("first request status = %d, want 200", w.Code)
	}
	if w := post(engine, "/extract", ""); w.Code != http.StatusTooManyRequests {
		t.Errorf("burst request status = %d, want 429", w.Code)
	}
}
