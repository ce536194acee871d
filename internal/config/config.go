package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Rentroll"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"rentroll"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Billing struct {
		ExpiringSoonWindow    time.Duration `envconfig:"BILLING_EXPIRING_SOON_WINDOW" default:"720h"`
		Timezone              string        `envconfig:"BILLING_TIMEZONE" default:"UTC"`
		StatusRefreshInterval time.Duration `envconfig:"BILLING_STATUS_REFRESH_INTERVAL" default:"24h"`
	}

	CORS struct {
		AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

// Location is the time zone billing months are counted in.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Billing.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading billing timezone %q: %w", c.Billing.Timezone, err)
	}

	return loc, nil
}

// Clock returns the current time in the billing time zone.
func (c *Config) Clock() (func() time.Time, error) {
	loc, err := c.Location()
	if err != nil {
		return nil, err
	}

	return func() time.Time { return time.Now().In(loc) }, nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if _, err := cfg.Location(); err != nil {
		return nil, err
	}

	if cfg.Billing.StatusRefreshInterval <= 0 {
		return nil, fmt.Errorf("BILLING_STATUS_REFRESH_INTERVAL must be positive, got %s", cfg.Billing.StatusRefreshInterval)
	}

	return &cfg, nil
}
