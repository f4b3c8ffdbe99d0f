package config

import (
	"fmt"
	"os"
	"strconv"
)

// Storage driver names.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Logger  LoggerConfig
	Auth    AuthConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
}

// StorageConfig selects and configures the durable key-value backend.
type StorageConfig struct {
	// Driver is one of "sqlite" (default), "postgres", or "memory".
	// Memory keeps nothing across restarts; it exists for demos and tests.
	Driver string

	// Path is the SQLite database file (sqlite driver only).
	Path string

	// Postgres holds connection settings (postgres driver only).
	Postgres PostgresConfig
}

// PostgresConfig holds PostgreSQL connection settings.
type PostgresConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	MaxConnections  int
	MinConnections  int
	MaxConnLifetime int // seconds
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	APIKey string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Storage: StorageConfig{
			Driver: getEnv("STORAGE_DRIVER", DriverSQLite),
			Path:   getEnv("STORAGE_PATH", "data/backoffice.db"),
			Postgres: PostgresConfig{
				Host:            getEnv("DB_HOST", "localhost"),
				Port:            getEnvAsInt("DB_PORT", 5432),
				User:            getEnv("DB_USER", "postgres"),
				Password:        getEnv("DB_PASSWORD", ""),
				Database:        getEnv("DB_NAME", "backoffice"),
				MaxConnections:  getEnvAsInt("DB_MAX_CONNECTIONS", 25),
				MinConnections:  getEnvAsInt("DB_MIN_CONNECTIONS", 5),
				MaxConnLifetime: getEnvAsInt("DB_MAX_CONN_LIFETIME", 300),
			},
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Auth: AuthConfig{
			APIKey: getEnv("API_KEY", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Auth.APIKey == "" {
		return fmt.Errorf("API key is required")
	}

	switch c.Storage.Driver {
	case DriverSQLite:
		if c.Storage.Path == "" {
			return fmt.Errorf("storage path is required for the sqlite driver")
		}

	case DriverPostgres:
		pg := c.Storage.Postgres
		if pg.Host == "" {
			return fmt.Errorf("database host is required")
		}
		if pg.Port < 1 || pg.Port > 65535 {
			return fmt.Errorf("invalid database port: %d", pg.Port)
		}
		if pg.User == "" {
			return fmt.Errorf("database user is required")
		}
		if pg.Database == "" {
			return fmt.Errorf("database name is required")
		}
		if pg.MaxConnections < 1 {
			return fmt.Errorf("database max connections must be at least 1")
		}
		if pg.MinConnections < 1 {
			return fmt.Errorf("database min connections must be at least 1")
		}
		if pg.MinConnections > pg.MaxConnections {
			return fmt.Errorf("database min connections cannot exceed max connections")
		}

	case DriverMemory:
		// nothing to configure

	default:
		return fmt.Errorf("invalid storage driver: %s (must be sqlite, postgres, or memory)", c.Storage.Driver)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	return nil
}

// ConnectionString returns the PostgreSQL connection string.
func (c *PostgresConfig) ConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
