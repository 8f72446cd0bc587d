package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/forgo/rango/connector"
)

// Config holds the settings of the rango-query tool. The library itself
// never reads the environment; this package is the single place where
// environment variables turn into a DataSource.
type Config struct {
	Server ServerConfig
	Auth   AuthConfig
	Query  QueryConfig
}

// ServerConfig holds the connection target.
type ServerConfig struct {
	Endpoint string
	Database string
	Timeout  time.Duration
}

// AuthConfig holds how to authenticate against the server.
type AuthConfig struct {
	// Method is "none", "basic" or "jwt".
	Method   string
	Username string
	Password string
}

// QueryConfig holds cursor defaults applied to every query.
type QueryConfig struct {
	BatchSize int
	Count     bool
}

// Load reads configuration from environment variables with sensible
// defaults.
func Load() (*Config, error) {
	return &Config{
		Server: ServerConfig{
			Endpoint: getEnv("RANGO_ENDPOINT", "http://localhost:8529"),
			Database: getEnv("RANGO_DATABASE", connector.SystemDatabase),
			Timeout:  getDurationEnv("RANGO_TIMEOUT", connector.DefaultTimeout),
		},
		Auth: AuthConfig{
			Method:   getEnv("RANGO_AUTH_METHOD", "basic"),
			Username: getEnv("RANGO_USERNAME", connector.DefaultUsername),
			Password: getEnv("RANGO_PASSWORD", ""),
		},
		Query: QueryConfig{
			BatchSize: getIntEnv("RANGO_BATCH_SIZE", 0),
			Count:     getBoolEnv("RANGO_COUNT", false),
		},
	}, nil
}

// Validate checks that all configuration values are present and valid.
// It returns an error describing all validation failures, or nil if
// valid.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Endpoint == "" {
		errs = append(errs, errors.New("RANGO_ENDPOINT is required"))
	}
	if c.Server.Database == "" {
		errs = append(errs, errors.New("RANGO_DATABASE is required"))
	}
	if c.Server.Timeout <= 0 {
		errs = append(errs, errors.New("RANGO_TIMEOUT must be positive"))
	}

	switch c.Auth.Method {
	case "none":
	case "basic", "jwt":
		if c.Auth.Username == "" {
			errs = append(errs, errors.New("RANGO_USERNAME is required unless RANGO_AUTH_METHOD is 'none'"))
		}
	default:
		errs = append(errs, fmt.Errorf("RANGO_AUTH_METHOD must be 'none', 'basic', or 'jwt', got '%s'", c.Auth.Method))
	}

	if c.Query.BatchSize < 0 {
		errs = append(errs, errors.New("RANGO_BATCH_SIZE must not be negative"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// DataSource builds the connector datasource described by the
// configuration.
func (c *Config) DataSource() (*connector.DataSource, error) {
	ds, err := connector.ParseDataSource(c.Server.Endpoint)
	if err != nil {
		return nil, err
	}
	ds = ds.UseDatabase(c.Server.Database).WithTimeout(c.Server.Timeout)
	switch c.Auth.Method {
	case "basic":
		ds = ds.WithAuthentication(connector.BasicAuthentication(c.Auth.Username, c.Auth.Password))
	case "jwt":
		ds = ds.WithAuthentication(connector.JWTAuthentication(c.Auth.Username, c.Auth.Password))
	default:
		ds = ds.WithAuthentication(connector.NoAuthentication())
	}
	return ds, nil
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
