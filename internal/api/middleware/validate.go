package middleware

import (
	"net/http"

	"github.com/vastberg/user-api/internal/api/shared"
)

// RequireValidBody decodes the request body into a fresh payload from build,
// validates it, and short-circuits with 400 and the list of field errors
// before the handler runs. On success the decoded payload is stored in the
// request context for the handler to pick up via shared.ValidatedBody.
//
// Only routes that declare validation rules (create, replace, patch) are
// wrapped with this middleware.
func RequireValidBody(build func() any) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			payload := build()

			if err := shared.DecodeJSON(r, payload); err != nil {
				shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
				return
			}

			if n, ok := payload.(shared.Normalizer); ok {
				n.Normalize()
			}

			if fieldErrors := shared.ValidateStruct(payload); fieldErrors != nil {
				shared.RespondWithValidationErrors(w, r, fieldErrors)
				return
			}

			ctx := shared.SetValidatedBody(r.Context(), payload)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
