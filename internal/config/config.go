// Package config loads process configuration. The only required value
// for generation features is the completion-service API key; with no
// key configured the read-only workflow (notes, timeline, report)
// stays fully usable.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/careers2017uae-bot/SmartDiago/internal/llm"
)

const (
	// EnvAPIKey matches the variable the original deployment used.
	EnvAPIKey = "GROQ_API_KEY"

	EnvModel    = "SMARTDIAGO_MODEL"
	EnvEndpoint = "SMARTDIAGO_ENDPOINT"
	EnvTimeout  = "SMARTDIAGO_TIMEOUT" // seconds
	EnvLogLevel = "SMARTDIAGO_LOG_LEVEL"
	EnvLogFile  = "SMARTDIAGO_LOG_FILE"

	DefaultLogLevel = "info"
	DefaultLogFile  = "smartdiago.log"
)

// Config is the resolved process configuration.
type Config struct {
	APIKey   string
	Model    string
	Endpoint string
	Timeout  time.Duration
	LogLevel string
	LogFile  string
}

// HasCredential reports whether generation features are available.
func (c Config) HasCredential() bool { return c.APIKey != "" }

// LLM returns the completion-client configuration.
func (c Config) LLM() llm.Config {
	return llm.Config{
		Endpoint: c.Endpoint,
		APIKey:   c.APIKey,
		Model:    c.Model,
		Timeout:  c.Timeout,
	}
}

// Load reads a .env file if present, then the process environment.
// Absence of the API key is not an error here; generation calls fail
// with a missing-credential error instead.
func Load() Config {
	_ = godotenv.Load() // best effort; env vars win anyway

	cfg := Config{
		APIKey:   os.Getenv(EnvAPIKey),
		Model:    getenv(EnvModel, llm.DefaultModel),
		Endpoint: getenv(EnvEndpoint, llm.DefaultEndpoint),
		Timeout:  llm.DefaultTimeout,
		LogLevel: getenv(EnvLogLevel, DefaultLogLevel),
		LogFile:  getenv(EnvLogFile, DefaultLogFile),
	}

	if raw := os.Getenv(EnvTimeout); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			cfg.Timeout = time.Duration(secs) * time.Second
		}
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
