package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the settings the application cannot start without
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Upload.MaxSizeMB <= 0 {
		return fmt.Errorf("upload.maxSizeMB must be positive, got: %d", c.Upload.MaxSizeMB)
	}

	switch c.Logger.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Logger.Level)
	}

	for _, origin := range c.Server.AllowedOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("invalid allowed origin %q: must be \"*\" or start with http:// or https://", origin)
		}
	}

	switch c.Storage.Driver {
	case StorageMemory:
		return nil
	case StoragePostgres:
		return c.Database.Validate()
	default:
		return fmt.Errorf("unsupported storage driver: %s", c.Storage.Driver)
	}
}

// Validate checks the database settings required by the postgres driver
func (d *DatabaseConfig) Validate() error {
	if d.Host == "" {
		return errors.New("database host is required")
	}
	if d.Port <= 0 || d.Port > 65535 {
		return fmt.Errorf("invalid database port: %d", d.Port)
	}
	if d.Username == "" {
		return errors.New("database username is required")
	}
	if d.Database == "" {
		return errors.New("database name is required")
	}

	validSSLModes := map[string]bool{
		"disable":     true,
		"require":     true,
		"verify-ca":   true,
		"verify-full": true,
		"prefer":      true,
	}
	if !validSSLModes[d.SSLMode] {
		return fmt.Errorf("invalid SSL mode: %s", d.SSLMode)
	}

	if d.MaxOpenConns <= 0 {
		return fmt.Errorf("max open connections must be positive, got: %d", d.MaxOpenConns)
	}
	if d.QueryTimeout <= 0 {
		return errors.New("query timeout must be positive")
	}
	if d.RetryAttempts < 1 {
		return fmt.Errorf("retry attempts must be at least 1, got: %d", d.RetryAttempts)
	}
	return nil
}

// DSN returns the postgres connection string
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.Username, d.Password, d.Database, d.SSLMode,
	)
}
