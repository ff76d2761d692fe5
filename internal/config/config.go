package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // STATS_TIMEZONE must resolve on hosts without zoneinfo

	"github.com/spf13/viper"
)

// Config is the process configuration, read once at startup.
type Config struct {
	AppPort                string        `mapstructure:"APP_PORT"`
	DatabaseDriver         string        `mapstructure:"DATABASE_DRIVER"`
	DatabaseDSN            string        `mapstructure:"DATABASE_DSN"`
	AdminUsername          string        `mapstructure:"ADMIN_USERNAME"`
	AdminPassword          string        `mapstructure:"ADMIN_PASSWORD"`
	JWTSecret              string        `mapstructure:"JWT_SECRET"`
	SessionTTL             time.Duration `mapstructure:"SESSION_TTL"`
	RabbitMQURL            string        `mapstructure:"RABBITMQ_URL"`
	NotifyConsumer         bool          `mapstructure:"NOTIFY_CONSUMER"`
	StatsTimezone          string        `mapstructure:"STATS_TIMEZONE"`
	CORSAllowOrigins       string        `mapstructure:"CORS_ALLOW_ORIGINS"`
	LogLevel               string        `mapstructure:"LOG_LEVEL"`
	RejectOutOfStockOrders bool          `mapstructure:"ORDERS_REJECT_OUT_OF_STOCK"`
	SeedOnStart            bool          `mapstructure:"SEED_ON_START"`
}

// SetDefaults registers every known key so AutomaticEnv can resolve it.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":8000")
	v.SetDefault("DATABASE_DRIVER", "sqlite")
	v.SetDefault("DATABASE_DSN", "file:storefront.db?_foreign_keys=on")
	v.SetDefault("ADMIN_USERNAME", "admin")
	v.SetDefault("ADMIN_PASSWORD", "")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("SESSION_TTL", "12h")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("NOTIFY_CONSUMER", false)
	v.SetDefault("STATS_TIMEZONE", "Asia/Karachi")
	v.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:5173")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("ORDERS_REJECT_OUT_OF_STOCK", false)
	v.SetDefault("SEED_ON_START", false)
}

// Load reads configuration from v, applying defaults and environment
// overrides, and validates required values.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports missing or malformed settings.
func (c *Config) Validate() error {
	var errs []error
	if c.AdminUsername == "" {
		errs = append(errs, errors.New("ADMIN_USERNAME must not be empty"))
	}
	if c.AdminPassword == "" {
		errs = append(errs, errors.New("ADMIN_PASSWORD must be set"))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET must be set"))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, fmt.Errorf("SESSION_TTL must be positive, got %s", c.SessionTTL))
	}
	switch c.DatabaseDriver {
	case "sqlite", "postgres", "mysql":
	default:
		errs = append(errs, fmt.Errorf("unsupported DATABASE_DRIVER %q", c.DatabaseDriver))
	}
	if _, err := time.LoadLocation(c.StatsTimezone); err != nil {
		errs = append(errs, fmt.Errorf("invalid STATS_TIMEZONE %q: %w", c.StatsTimezone, err))
	}
	return errors.Join(errs...)
}

// Location returns the reference timezone for stats windows.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.StatsTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// AllowedOrigins returns the CORS origins as a cleaned comma separated list.
func (c *Config) AllowedOrigins() string {
	parts := strings.Split(c.CORSAllowOrigins, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ",")
}
