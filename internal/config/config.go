package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port  string `envconfig:"PORT" default:"8080"`
	Debug bool   `envconfig:"DEBUG" default:"false"`

	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`

	// AdminToken protects the /admin routes. Leaving it empty disables the
	// admin API entirely.
	AdminToken string `envconfig:"ADMIN_TOKEN"`

	SentryDSN   string `envconfig:"SENTRY_DSN"`
	Environment string `envconfig:"ENVIRONMENT" default:"development"`

	// MatchLogRetentionDays controls how long match logs are kept before the
	// retention worker prunes them. Zero disables pruning.
	MatchLogRetentionDays int `envconfig:"MATCH_LOG_RETENTION_DAYS" default:"90"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("SHOREBOT", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}

func (c *Config) HasAdminAPI() bool {
	return c.AdminToken != ""
}

func (c *Config) HasSentry() bool {
	return c.SentryDSN != ""
}
