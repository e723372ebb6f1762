package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/vastberg/user-api/internal/api/shared"
)

// RecoverMiddleware catches panics from any later stage, logs them with the
// stack trace, and answers 500 with a structured JSON body. The process is
// never taken down by a request fault; every request terminates in a
// response.
func RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				// The handler aborted the connection on purpose.
				panic(rec)
			}

			slog.Error("panic recovered",
				slog.Any("panic", rec),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("trace_id", shared.GetTraceID(r.Context())),
				slog.String("stack", string(debug.Stack())))

			shared.RespondWithJSON(w, r, http.StatusInternalServerError, shared.ErrorResponse{
				Error:   "Internal server error",
				Message: fmt.Sprint(rec),
				TraceID: shared.GetTraceID(r.Context()),
			})
		}()

		next.ServeHTTP(w, r)
	})
}
