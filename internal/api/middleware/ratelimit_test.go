package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vastberg/user-api/internal/ratelimit"
)

func TestClientAddrKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		remoteAddr string
		want       string
	}{
		{name: "host and port", remoteAddr: "192.0.2.1:51234", want: "192.0.2.1"},
		{name: "bare host", remoteAddr: "192.0.2.1", want: "192.0.2.1"},
		{name: "ipv6 with port", remoteAddr: "[2001:db8::1]:443", want: "2001:db8::1"},
		{name: "empty", remoteAddr: "", want: "unknown"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodPost, "/users", nil)
			req.RemoteAddr = tt.remoteAddr
			assert.Equal(t, tt.want, ClientAddrKey(req))
		})
	}
}

func TestRateLimitMiddleware_Limit(t *testing.T) {
	t.Parallel()

	window := ratelimit.NewWindow(3, time.Minute)
	m := NewRateLimitMiddleware(window, nil)

	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	next, _ := okHandler()
	handler := m.Limit(next)

	do := func(addr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/users", nil)
		req.RemoteAddr = addr
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, req)
		return recorder
	}

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, do("192.0.2.1:1000").Code, "request %d within quota", i+1)
		now = now.Add(time.Second)
	}

	over := do("192.0.2.1:1000")
	assert.Equal(t, http.StatusTooManyRequests, over.Code)
	assert.Equal(t, "60", over.Header().Get("Retry-After"))
	assert.Contains(t, over.Body.String(), "Too many requests")

	// A different client is unaffected, and the port does not matter.
	assert.Equal(t, http.StatusOK, do("192.0.2.7:1000").Code)
	assert.Equal(t, http.StatusTooManyRequests, do("192.0.2.1:9999").Code)

	// Once the window slides past the early requests, the client recovers.
	now = now.Add(2 * time.Minute)
	assert.Equal(t, http.StatusOK, do("192.0.2.1:1000").Code)
}
