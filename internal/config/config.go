// Package config loads application configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"budgetly/internal/logger"
)

// DevJWTSecret is the signing key used when JWT_SECRET is not set. It is
// rejected in production.
const DevJWTSecret = "fallback-secret-key-for-dev-only"

// Database drivers understood by the database package.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DatabaseConfig holds database connection settings.
type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	// Path is the SQLite database file, used when Driver is "sqlite".
	Path string
}

// Config holds application configuration
type Config struct {
	Env  string
	Port string

	Database DatabaseConfig

	// JWT
	JWTSecret        string
	JWTExpirationDur time.Duration

	CORSOrigin string
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads a .env file when present and resolves configuration from
// environment variables, falling back to development defaults.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Get().Debug(".env file not found, using process environment")
	}
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("ENV", "development")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "budgetly")
	v.SetDefault("DB_PASSWORD", "budgetly")
	v.SetDefault("DB_NAME", "budgetly")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_PATH", "budgetly.db")
	v.SetDefault("JWT_SECRET", DevJWTSecret)
	v.SetDefault("JWT_EXPIRES_IN", "24h")
	v.SetDefault("CORS_ORIGIN", "*")
	return v
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Env:  v.GetString("ENV"),
		Port: v.GetString("PORT"),
		Database: DatabaseConfig{
			Driver:   strings.ToLower(v.GetString("DB_DRIVER")),
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
			Path:     v.GetString("DB_PATH"),
		},
		JWTSecret:  v.GetString("JWT_SECRET"),
		CORSOrigin: v.GetString("CORS_ORIGIN"),
	}

	expStr := v.GetString("JWT_EXPIRES_IN")
	expDur, err := time.ParseDuration(expStr)
	if err != nil || expDur <= 0 {
		logger.Get().Warnf("invalid JWT_EXPIRES_IN value %q, falling back to 24h", expStr)
		expDur = 24 * time.Hour
	}
	cfg.JWTExpirationDur = expDur

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (use postgres or sqlite)", c.Database.Driver)
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET must not be empty")
	}
	if c.IsProduction() && c.JWTSecret == DevJWTSecret {
		return errors.New("JWT_SECRET must be set in production")
	}
	return nil
}
