// Package config loads gateway configuration from the environment, with
// optional .env file support for local development.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	Server        ServerConfig
	Groq          GroqConfig
	HuggingFace   HuggingFaceConfig
	ErrorTracking ErrorTrackingConfig
}

type AppConfig struct {
	Name     string `envconfig:"APP_NAME" default:"ai-gateway"`
	Env      string `envconfig:"APP_ENV" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

type ServerConfig struct {
	Port           int           `envconfig:"PORT" default:"8000"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"90s"`
	TLSEnabled     bool          `envconfig:"TLS_ENABLED" default:"false"`
	TLSCertFile    string        `envconfig:"TLS_CERT_FILE"`
	TLSKeyFile     string        `envconfig:"TLS_KEY_FILE"`
}

func (c ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

type GroqConfig struct {
	APIKey string `envconfig:"GROQ_API_KEY"`
	Model  string `envconfig:"GROQ_MODEL" default:"llama-3.1-8b-instant"`
}

// HuggingFaceConfig has no model default on purpose: an empty Model means
// the variable was never set, which the provider selector uses to tell a
// partially configured Hugging Face setup apart from no setup at all.
type HuggingFaceConfig struct {
	APIKey      string `envconfig:"HUGGINGFACE_API_KEY"`
	Model       string `envconfig:"HUGGINGFACE_MODEL"`
	CatalogPath string `envconfig:"MODEL_CATALOG_PATH"`
}

// Configured reports whether any Hugging Face setting is present.
func (c HuggingFaceConfig) Configured() bool {
	return c.APIKey != "" || c.Model != ""
}

type ErrorTrackingConfig struct {
	SentryDSN   string `envconfig:"SENTRY_DSN"`
	Environment string `envconfig:"SENTRY_ENVIRONMENT" default:"production"`
}

// Load reads a .env file when present, then processes the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("config: process environment: %w", err)
	}
	return &cfg, nil
}
