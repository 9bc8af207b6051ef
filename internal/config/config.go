package config

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/bullseye-app/bullseye/internal/analysis"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Bullseye"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"bullseye"`
	}

	Server struct {
		Timeout        time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		AllowedOrigins []string      `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:5173"`
	}

	Auth struct {
		Secret string `envconfig:"AUTH_SECRET" required:"true"`
	}

	// Zones optionally overrides the board layout with a JSON-encoded
	// analysis.ZoneConfig. Empty keeps the default asymmetric board.
	Zones string `envconfig:"ZONES"`
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

// ZoneConfig returns the configured board layout.
func (c *Config) ZoneConfig() (analysis.ZoneConfig, error) {
	if c.Zones == "" {
		return analysis.DefaultZones(), nil
	}

	var zones analysis.ZoneConfig
	if err := json.Unmarshal([]byte(c.Zones), &zones); err != nil {
		return analysis.ZoneConfig{}, fmt.Errorf("parsing ZONES: %w", err)
	}

	return zones, nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
