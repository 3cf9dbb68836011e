package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"notes-to-tasks/pkg/log"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(m Middleware, seen *string) *gin.Engine {
	r := gin.New()
	r.Use(m.RequestID(), m.RateLimit())
	r.GET("/ping", func(c *gin.Context) {
		if seen != nil {
			*seen = log.RequestIDFromContext(c.Request.Context())
		}
		c.String(http.StatusOK, "pong")
	})
	return r
}

func TestRequestID(t *testing.T) {
	var seen string
	r := newRouter(New(log.NewNop(), 0), &seen)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, "req-123")
	r.ServeHTTP(w, req)

	if got := w.Header().Get(HeaderRequestID); got != "req-123" {
		t.Errorf("response header = %q, want req-123", got)
	}
	if seen != "req-123" {
		t.Errorf("context request id = %q, want req-123", seen)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if got := w.Header().Get(HeaderRequestID); got == "" || got != seen {
		t.Errorf("generated id %q not propagated (context %q)", got, seen)
	}
}

func TestRateLimit(t *testing.T) {
	r := newRouter(New(log.NewNop(), 2), nil)

	do := func(ip string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = ip + ":1234"
		r.ServeHTTP(w, req)
		return w.Code
	}

	for i := 0; i < 2; i++ {
		if code := do("10.0.0.1"); code != http.StatusOK {
			t.Fatalf("request %d: status %d, want 200", i, code)
		}
	}
	if code := do("10.0.0.1"); code != http.StatusTooManyRequests {
		t.Errorf("third request: status %d, want 429", code)
	}
	if code := do("10.0.0.2"); code != http.StatusOK {
		t.Errorf("other client: status %d, want 200", code)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	r := newRouter(New(log.NewNop(), 0), nil)
	for i := 0; i < 50; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: status %d", i, w.Code)
		}
	}
}
