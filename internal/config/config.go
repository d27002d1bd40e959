// Package config manages application configuration
package config

import (
	"os"
)

// Config holds all application configuration
type Config struct {
	// Database
	DatabaseURL string

	// Environment is "development" or "production"
	Environment string
}

// Load reads configuration from environment variables with sensible defaults
func Load() *Config {
	return &Config{
		DatabaseURL: getEnv("TRADEBOOK_DATABASE_URL", "tradebook.db"),
		Environment: getEnv("TRADEBOOK_ENV", "development"),
	}
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
