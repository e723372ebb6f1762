package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/vastberg/user-api/internal/api/shared"
)

// APIKeyHeader is the request header carrying the shared secret.
const APIKeyHeader = "x-api-key"

// APIKeyMiddleware gates mutating requests behind a static shared API key.
// GET requests always pass; any other method must present the configured
// key in the x-api-key header or the request is rejected with 401 before
// validation or the store are reached. The router scopes this middleware to
// the /users routes.
type APIKeyMiddleware struct {
	key string
}

// NewAPIKeyMiddleware creates an APIKeyMiddleware requiring the given key.
func NewAPIKeyMiddleware(key string) *APIKeyMiddleware {
	return &APIKeyMiddleware{key: key}
}

// Require checks the x-api-key header on mutating requests.
func (m *APIKeyMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			next.ServeHTTP(w, r)
			return
		}

		got := r.Header.Get(APIKeyHeader)
		if got == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "API key required")
			return
		}
		if subtle.ConstantTimeCompare([]byte(got), []byte(m.key)) != 1 {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid API key")
			return
		}

		next.ServeHTTP(w, r)
	})
}
