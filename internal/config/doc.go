// Package config loads and validates application configuration from
// defaults, an optional config file and environment variables.
package config
