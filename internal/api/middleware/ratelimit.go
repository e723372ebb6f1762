package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/vastberg/user-api/internal/api/shared"
	"github.com/vastberg/user-api/internal/ratelimit"
)

// KeyFunc derives the rate-limit key for a request.
type KeyFunc func(r *http.Request) string

// ClientAddrKey keys requests on the client network address: the host part
// of RemoteAddr, falling back to the raw value when it has no port.
func ClientAddrKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}

// RateLimitMiddleware rejects requests exceeding a per-client sliding-window
// quota with 429. The router applies it to the mutating /users routes only;
// GET requests are never rate limited.
type RateLimitMiddleware struct {
	window *ratelimit.Window
	keyFn  KeyFunc
	now    func() time.Time
}

// NewRateLimitMiddleware creates a RateLimitMiddleware over the given window.
// A nil keyFn defaults to ClientAddrKey.
func NewRateLimitMiddleware(window *ratelimit.Window, keyFn KeyFunc) *RateLimitMiddleware {
	if keyFn == nil {
		keyFn = ClientAddrKey
	}
	return &RateLimitMiddleware{
		window: window,
		keyFn:  keyFn,
		now:    time.Now,
	}
}

// Limit enforces the quota for the request's client key.
func (m *RateLimitMiddleware) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := m.keyFn(r)

		if !m.window.Allow(key, m.now()) {
			slog.Warn("rate limit exceeded",
				slog.String("client", key),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path))

			w.Header().Set("Retry-After", strconv.Itoa(int(m.window.Span().Seconds())))
			shared.RespondWithError(w, r, http.StatusTooManyRequests, "Too many requests")
			return
		}

		next.ServeHTTP(w, r)
	})
}
