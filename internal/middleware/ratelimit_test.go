package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"calendar-assistant/config"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

func newTestEngine(rateLimitPerMin int) *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Webhook.RateLimitPerMin = rateLimitPerMin

	mw := New(&mockLogger{}, cfg)

	engine := gin.New()
	engine.Use(mw.RateLimit())
	engine.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return engine
}

func doGet(engine *gin.Engine, remoteAddr string) int {
	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimit(t *testing.T) {
	t.Run("Allows Within Burst", func(t *testing.T) {
		engine := newTestEngine(600) // burst 60

		for i := 0; i < 10; i++ {
			if code := doGet(engine, "10.0.0.1:1234"); code != http.StatusOK {
				t.Fatalf("request %d: expected 200, got %d", i, code)
			}
		}
	})

	t.Run("Throttles Beyond Burst", func(t *testing.T) {
		engine := newTestEngine(10) // burst 1

		if code := doGet(engine, "10.0.0.2:1234"); code != http.StatusOK {
			t.Fatalf("first request: expected 200, got %d", code)
		}
		if code := doGet(engine, "10.0.0.2:1234"); code != http.StatusTooManyRequests {
			t.Errorf("second request: expected 429, got %d", code)
		}
	})

	t.Run("Limits Per Source", func(t *testing.T) {
		engine := newTestEngine(10)

		if code := doGet(engine, "10.0.0.3:1234"); code != http.StatusOK {
			t.Fatalf("expected 200, got %d", code)
		}
		if code := doGet(engine, "10.0.0.3:1234"); code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", code)
		}
		// A different source gets its own bucket.
		if code := doGet(engine, "10.0.0.4:1234"); code != http.StatusOK {
			t.Errorf("other source: expected 200, got %d", code)
		}
	})

	t.Run("Zero Limit Disables", func(t *testing.T) {
		engine := newTestEngine(0)

		for i := 0; i < 20; i++ {
			if code := doGet(engine, "10.0.0.5:1234"); code != http.StatusOK {
				t.Fatalf("request %d: expected 200, got %d", i, code)
			}
		}
	})
}
