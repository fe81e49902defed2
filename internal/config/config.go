package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

var (
	ErrMissingJWTSecret = errors.New("JWT_SECRET is not defined")
	ErrUnknownDBDriver  = errors.New("unknown DB_DRIVER")
)

// Supported database drivers
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Port            string
	GinMode         string
	DBDriver        string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBPath          string
	JWTSecret       string
	JWTExpiry       string
	ShutdownTimeout string
}

func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "3003"),
		GinMode:         getEnv("GIN_MODE", "debug"),
		DBDriver:        getEnv("DB_DRIVER", DriverPostgres),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBUser:          getEnv("DB_USER", "todouser"),
		DBPassword:      getEnv("DB_PASSWORD", "todopassword"),
		DBName:          getEnv("DB_NAME", "todo"),
		DBPath:          getEnv("DB_PATH", "todo.db"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		JWTExpiry:       getEnv("JWT_EXPIRY", "none"),
		ShutdownTimeout: getEnv("SHUTDOWN_TIMEOUT", "10s"),
	}
}

// Validate reports configuration the server cannot start with.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return ErrMissingJWTSecret
	}

	switch c.DBDriver {
	case DriverPostgres, DriverMySQL, DriverSQLite:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDBDriver, c.DBDriver)
	}

	if _, err := c.TokenExpiry(); err != nil {
		return err
	}
	if _, err := c.ShutdownWindow(); err != nil {
		return err
	}

	return nil
}

// TokenExpiry returns the token lifetime. Zero means tokens never expire.
func (c *Config) TokenExpiry() (time.Duration, error) {
	value := strings.TrimSpace(strings.ToLower(c.JWTExpiry))
	if value == "" || value == "none" || value == "0" {
		return 0, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid JWT_EXPIRY %q: %w", c.JWTExpiry, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid JWT_EXPIRY %q: must not be negative", c.JWTExpiry)
	}
	return d, nil
}

// ShutdownWindow returns how long in-flight requests get to finish on shutdown.
func (c *Config) ShutdownWindow() (time.Duration, error) {
	d, err := time.ParseDuration(c.ShutdownTimeout)
	if err != nil {
		return 0, fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q: %w", c.ShutdownTimeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q: must not be negative", c.ShutdownTimeout)
	}
	return d, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
