// Package config provides configuration loading and validation for the CLI.
package config

import (
	"fmt"
	"os"
	"time"
)

// DefaultEndpoint is the catalog GraphQL endpoint used when none is
// configured.
const DefaultEndpoint = "https://api.hardcover.app/v1/graphql"

// Config holds the settings the CLI needs to talk to the catalog service.
type Config struct {
	// Endpoint is the GraphQL endpoint URL.
	Endpoint string
	// Token is the bearer credential for the catalog service.
	Token string
	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration
	// DatabaseURL enables sync-run history persistence when set.
	DatabaseURL string
	// Verbose enables detailed progress output.
	Verbose bool
}

// NewFromEnv builds a configuration from environment variables. It reads
// CATALOG_API_TOKEN (required), CATALOG_API_URL, CATALOG_TIMEOUT and
// DATABASE_URL.
func NewFromEnv() (*Config, error) {
	cfg := &Config{
		Endpoint:    getEnvString("CATALOG_API_URL", DefaultEndpoint),
		Token:       os.Getenv("CATALOG_API_TOKEN"),
		Timeout:     getEnvDuration("CATALOG_TIMEOUT", 0),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Token == "" {
		return fmt.Errorf("CATALOG_API_TOKEN is required but not set")
	}
	if c.Endpoint == "" {
		return fmt.Errorf("catalog endpoint cannot be empty")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be non-negative, got: %v", c.Timeout)
	}
	return nil
}

// getEnvString gets an environment variable as a string with a default value.
func getEnvString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as a duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
