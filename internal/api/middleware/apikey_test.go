package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler() (http.Handler, *bool) {
	called := false
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}), &called
}

func TestAPIKeyMiddleware_Require(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		method         string
		key            string
		expectedStatus int
		expectNext     bool
	}{
		{
			name:           "GET passes without a key",
			method:         http.MethodGet,
			key:            "",
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:           "POST without a key",
			method:         http.MethodPost,
			key:            "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "POST with a wrong key",
			method:         http.MethodPost,
			key:            "not-the-key",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "POST with the right key",
			method:         http.MethodPost,
			key:            "secret-key-123",
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:           "DELETE with the right key",
			method:         http.MethodDelete,
			key:            "secret-key-123",
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:           "PATCH without a key",
			method:         http.MethodPatch,
			key:            "",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			next, called := okHandler()
			gate := NewAPIKeyMiddleware("secret-key-123")

			req := httptest.NewRequest(tt.method, "/users", nil)
			if tt.key != "" {
				req.Header.Set(APIKeyHeader, tt.key)
			}
			recorder := httptest.NewRecorder()

			gate.Require(next).ServeHTTP(recorder, req)

			assert.Equal(t, tt.expectedStatus, recorder.Code)
			assert.Equal(t, tt.expectNext, *called, "next handler invocation")
			if tt.expectedStatus == http.StatusUnauthorized {
				assert.Contains(t, recorder.Body.String(), "error")
			}
		})
	}
}
