// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Models holds the two model identifiers the facades bind to: a cheaper
// one for routine extraction work and a higher-capability one for the
// analysis-heavy roles and the orchestrator.
type Models struct {
	Default      string
	Orchestrator string
}

// Config is built once at process start and injected into every
// component that needs it. The credential is resolved here, exactly
// once; a blank value is carried as-is and detected by the gateway.
type Config struct {
	Port      string
	LogLevel  string
	PrettyLog bool
	OpenAIKey string
	Models    Models
}

// Load reads configuration from a .env file (if present) and the
// environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:      getEnv("PORT", "8080"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		PrettyLog: getEnvBool("LOG_PRETTY", true),
		OpenAIKey: strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		Models: Models{
			Default:      getEnv("DEFAULT_MODEL", "gpt-4o-mini"),
			Orchestrator: getEnv("ORCHESTRATOR_MODEL", "gpt-4-turbo"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration fields are set. The
// API key is intentionally not required: an unconfigured process still
// serves, reporting the condition on every call.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if c.Models.Default == "" {
		return fmt.Errorf("DEFAULT_MODEL cannot be empty")
	}
	if c.Models.Orchestrator == "" {
		return fmt.Errorf("ORCHESTRATOR_MODEL cannot be empty")
	}
	return nil
}

// Configured reports whether a credential was resolved.
func (c *Config) Configured() bool {
	return c.OpenAIKey != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
