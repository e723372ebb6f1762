package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"     validate:"required"`
	Auth      AuthConfig      `mapstructure:"auth"       validate:"required"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// SeedDemoData pre-populates the store with a handful of demo users at
	// startup. Useful for manual poking, off by default.
	SeedDemoData bool `mapstructure:"seed_demo_data"`
}

// AuthConfig contains the access-gate settings. Authentication is a single
// static shared key checked on mutating /users requests; anything stronger
// is out of scope for this service.
type AuthConfig struct {
	APIKey string `mapstructure:"api_key" validate:"required"`
}

// RateLimitConfig contains the sliding-window rate limiter settings.
type RateLimitConfig struct {
	MaxRequests int           `mapstructure:"max_requests" validate:"required,gt=0"`
	Window      time.Duration `mapstructure:"window"       validate:"required"`
}
