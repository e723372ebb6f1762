package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/vastberg/user-api/internal/api"
	apiMiddleware "github.com/vastberg/user-api/internal/api/middleware"
	"github.com/vastberg/user-api/internal/api/shared"
)

// setupRouter creates and configures the application router with all routes
// and middleware. The middleware order is the request pipeline contract:
// logging runs first and never blocks, the recoverer wraps everything below
// it, the API-key gate runs before the rate limiter, the rate limiter before
// validation, and validation before the route handler. Any stage may
// short-circuit with a response; nothing after it runs.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(apiMiddleware.RecoverMiddleware)

	handler := api.NewUserHandler(app.userStore, app.logger)
	apiKey := apiMiddleware.NewAPIKeyMiddleware(app.config.Auth.APIKey)
	rateLimit := apiMiddleware.NewRateLimitMiddleware(app.limiter, nil)

	r.Get("/", handler.Welcome)
	r.Get("/search", handler.SearchUsers)

	r.Route("/users", func(r chi.Router) {
		// The access gate covers the /users prefix only. GETs pass through
		// it unchecked, so applying it to the whole subtree is safe.
		r.Use(apiKey.Require)

		r.Get("/", handler.ListUsers)
		r.Get("/{id}", handler.GetUser)

		// Rate limiting is scoped to the mutating methods. Routes that
		// carry a body go through the validation stage as well.
		r.Group(func(r chi.Router) {
			r.Use(rateLimit.Limit)

			r.With(apiMiddleware.RequireValidBody(func() any { return new(api.CreateUserRequest) })).
				Post("/", handler.CreateUser)
			r.With(apiMiddleware.RequireValidBody(func() any { return new(api.ReplaceUserRequest) })).
				Put("/{id}", handler.ReplaceUser)
			r.With(apiMiddleware.RequireValidBody(func() any { return new(api.PatchUserRequest) })).
				Patch("/{id}", handler.PatchUser)

			r.Delete("/{id}", handler.DeleteUser)
			r.Delete("/", handler.DeleteAllUsers)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	notFound := func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusNotFound, shared.ErrorResponse{
			Error:   "Route not found",
			Path:    r.URL.Path,
			Method:  r.Method,
			TraceID: shared.GetTraceID(r.Context()),
		})
	}
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	return r
}
