package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config carries the environment-derived settings for the CLI. The client
// library itself never reads the process environment; everything it needs
// is passed in explicitly from here.
type Config struct {
	AuthKey   string        `envconfig:"DEEPL_AUTH_KEY" default:""`
	ServerURL string        `envconfig:"DEEPL_SERVER_URL" default:""`
	Timeout   time.Duration `envconfig:"DEEPL_TIMEOUT" default:"0"`
}

// Load reads an optional .env file from the working directory and then the
// process environment. A missing .env file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment configuration: %w", err)
	}
	cfg.AuthKey = strings.TrimSpace(cfg.AuthKey)
	cfg.ServerURL = strings.TrimSpace(cfg.ServerURL)
	return &cfg, nil
}

// HasAuthKey reports whether an API key was found in the environment.
func (c *Config) HasAuthKey() bool {
	return c != nil && c.AuthKey != ""
}
