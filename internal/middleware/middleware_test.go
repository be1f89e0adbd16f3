package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/gauravmalhotra04/raiden-ai/config"
	"github.com/gauravmalhotra04/raiden-ai/internal/middleware"
	"github.com/gauravmalhotra04/raiden-ai/pkg/log"
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

func newMiddleware(perMin int, origins ...string) middleware.Middleware {
	cfg := &config.Config{}
	cfg.RateLimit.PerMin = perMin
	cfg.CORS.AllowedOrigins = origins
	return middleware.New(&mockLogger{}, cfg)
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := newMiddleware(0)

	var seen string
	r := gin.New()
	r.Use(mw.RequestID())
	r.GET("/", func(c *gin.Context) {
		seen = log.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		got := w.Header().Get(middleware.RequestIDHeader)
		if got == "" || got != seen {
			t.Errorf("header %q, context %q", got, seen)
		}
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if seen != "abc-123" || w.Header().Get(middleware.RequestIDHeader) != "abc-123" {
			t.Errorf("expected abc-123, got context %q", seen)
		}
	})
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		perMin   int
		requests int
		wantLast int
	}{
		{name: "disabled", perMin: 0, requests: 50, wantLast: http.StatusOK},
		{name: "within burst", perMin: 60, requests: 6, wantLast: http.StatusOK},
		{name: "burst exhausted", perMin: 60, requests: 7, wantLast: http.StatusTooManyRequests},
		{name: "tiny limit still allows one", perMin: 1, requests: 1, wantLast: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw := newMiddleware(tt.perMin)
			r := gin.New()
			r.POST("/", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

			var last int
			for i := 0; i < tt.requests; i++ {
				req := httptest.NewRequest(http.MethodPost, "/", nil)
				req.RemoteAddr = "10.0.0.1:1234"
				w := httptest.NewRecorder()
				r.ServeHTTP(w, req)
				last = w.Code
			}
			if last != tt.wantLast {
				t.Errorf("last status = %d, want %d", last, tt.wantLast)
			}
		})
	}
}

func TestRateLimitIsPerClient(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := newMiddleware(10) // burst 1

	r := gin.New()
	r.POST("/", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	if got := send("10.0.0.1:1"); got != http.StatusOK {
		t.Fatalf("first request: %d", got)
	}
	if got := send("10.0.0.1:2"); got != http.StatusTooManyRequests {
		t.Fatalf("second request from same IP: %d", got)
	}
	if got := send("10.0.0.2:1"); got != http.StatusOK {
		t.Fatalf("other IP: %d", got)
	}
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		origins    []string
		origin     string
		wantHeader string
	}{
		{name: "allow all", origins: []string{"*"}, origin: "http://anything.local", wantHeader: "*"},
		{name: "listed origin", origins: []string{"http://planner.local"}, origin: "http://planner.local", wantHeader: "http://planner.local"},
		{name: "unlisted origin", origins: []string{"http://planner.local"}, origin: "http://evil.local", wantHeader: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw := newMiddleware(0, tt.origins...)
			r := gin.New()
			r.Use(mw.CORS())
			r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tt.wantHeader {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.wantHeader)
			}
		})
	}
}
