package config

import (
	"context"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"

	"showcase.dev/internal/content"
	"showcase.dev/internal/models"
	"showcase.dev/internal/storage/sqlite"
)

// Config holds all application configuration
type Config struct {
	ServerAddr  string `env:"SERVER_ADDR" envDefault:":8080"`
	ContentPath string `env:"SHOWCASE_CONTENT" envDefault:"data/projects.yaml"`
	DBPath      string `env:"SHOWCASE_DB"`
	StaticDir   string `env:"SHOWCASE_STATIC_DIR" envDefault:"static"`
	LogFile     string `env:"SHOWCASE_LOG_FILE"`

	MetricsEnabled bool `env:"SHOWCASE_METRICS_ENABLED" envDefault:"true"`

	Telemetry Telemetry
}

// Telemetry holds tracing settings. Tracing stays off without an endpoint.
type Telemetry struct {
	ServiceName string `env:"SHOWCASE_SERVICE_NAME" envDefault:"showcase"`
	Endpoint    string `env:"SHOWCASE_OTEL_ENDPOINT"`
	Enabled     bool   `env:"SHOWCASE_OTEL_ENABLED" envDefault:"true"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads the configuration from the environment
func Load() (*Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadSection reads the projects section from the SQLite store when DBPath is
// set, otherwise from the content file.
func (c *Config) LoadSection(ctx context.Context) (*models.Section, error) {
	if c.DBPath != "" {
		store, err := sqlite.Open(c.DBPath)
		if err != nil {
			return nil, err
		}
		defer store.Close()

		section, err := store.LoadSection(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load section from %s: %w", c.DBPath, err)
		}
		return section, nil
	}

	return content.LoadFile(c.ContentPath)
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
