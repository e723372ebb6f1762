// Package main implements the entry point for the user API server: an HTTP
// CRUD service over an in-memory user collection, gated by an API key and a
// per-client rate limit.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/vastberg/user-api/internal/config"
	"github.com/vastberg/user-api/internal/platform/logger"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	router := app.setupRouter()
	if err := app.startHTTPServer(context.Background(), router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration, sets up logging and wires the
// application dependencies.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server)

	appLogger.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"rate_limit_max", cfg.RateLimit.MaxRequests,
		"rate_limit_window", cfg.RateLimit.Window)

	return newApplication(cfg, appLogger), nil
}
