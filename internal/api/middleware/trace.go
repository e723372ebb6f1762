package middleware

import (
	"log/slog"
	"net/http"

	"github.com/vastberg/user-api/internal/api/shared"
)

// TraceMiddleware adds a trace ID to the request context and logs every
// inbound request. This middleware should be applied early in the chain so
// that all subsequent handlers have access to the trace ID. It only observes
// the request and never short-circuits.
func TraceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Add a trace ID to the context
		ctx := shared.SetTraceID(r.Context())
		traceID := shared.GetTraceID(ctx)

		log := slog.With(slog.String("trace_id", traceID))

		log.Info("request started",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		// Continue with the updated context
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
