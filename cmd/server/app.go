package main

import (
	"context"
	"log/slog"

	"github.com/vastberg/user-api/internal/config"
	"github.com/vastberg/user-api/internal/ratelimit"
	"github.com/vastberg/user-api/internal/store"
	"github.com/vastberg/user-api/internal/store/memory"
)

// application holds the shared dependencies of the server: configuration,
// logger, the user store and the rate-limit window. Everything hangs off
// this struct instead of package-level globals so tests can build isolated
// instances.
type application struct {
	config    *config.Config
	logger    *slog.Logger
	userStore store.UserStore
	limiter   *ratelimit.Window
}

// newApplication wires up the application dependencies from configuration.
func newApplication(cfg *config.Config, logger *slog.Logger) *application {
	app := &application{
		config:    cfg,
		logger:    logger,
		userStore: memory.NewUserStore(),
		limiter:   ratelimit.NewWindow(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window),
	}

	if cfg.Server.SeedDemoData {
		app.seedDemoData()
	}

	return app
}

// seedDemoData pre-populates the store with a few well-known users.
func (app *application) seedDemoData() {
	seeds := []struct {
		name  string
		email string
	}{
		{"Anna", "anna@example.com"},
		{"Erik", "erik@example.com"},
		{"Maria", "maria@example.com"},
	}

	for _, s := range seeds {
		if _, err := app.userStore.Create(context.Background(), s.name, s.email); err != nil {
			app.logger.Warn("failed to seed demo user", "name", s.name, "error", err)
		}
	}

	app.logger.Info("seeded demo users", "count", len(seeds))
}
