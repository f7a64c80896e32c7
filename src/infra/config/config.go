// Package config handles application configuration via environment variables.
// It uses kelseyhightower/envconfig for parsing and provides sensible defaults.
// A .env file in the working directory is read first when present.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Store drivers.
const (
	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

// Config holds all application configuration.
// Values are loaded from environment variables with the prefix "APP".
// Example: APP_PORT=8080, APP_LOG_LEVEL=debug
type Config struct {
	// Server configuration (embedded to flatten env vars)
	Server ServerConfig

	// Store selects and configures the key-value backend
	Store StoreConfig

	// Database configuration, used when Store.Driver is postgres
	Database DatabaseConfig

	// Logging configuration (embedded to flatten env vars)
	Log LogConfig

	// Summary configures the AI summary collaborator
	Summary SummaryConfig

	// Notify configures webhook delivery
	Notify NotifyConfig

	// Submission tunes the registration pipeline
	Submission SubmissionConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Port is the HTTP server port (default: 8080)
	Port int `envconfig:"PORT" default:"8080"`

	// Host is the HTTP server host (default: 0.0.0.0)
	Host string `envconfig:"HOST" default:"0.0.0.0"`

	// ReadTimeout is the maximum duration for reading the entire request (default: 10s)
	ReadTimeout time.Duration `envconfig:"READ_TIMEOUT" default:"10s"`

	// WriteTimeout covers the whole submission pipeline, so it must exceed
	// the summary and webhook timeouts combined (default: 45s)
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"45s"`

	// ShutdownTimeout is the maximum duration to wait for active connections to finish (default: 30s)
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
}

// StoreConfig selects the persisted store backend.
type StoreConfig struct {
	// Driver is one of memory, sqlite, postgres (default: sqlite)
	Driver string `envconfig:"STORE_DRIVER" default:"sqlite"`

	// SQLitePath is the database file for the sqlite driver
	SQLitePath string `envconfig:"SQLITE_PATH" default:"./data/raidmaster.db"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	// Host is the database host (default: localhost)
	Host string `envconfig:"DB_HOST" default:"localhost"`

	// Port is the database port (default: 5432)
	Port int `envconfig:"DB_PORT" default:"5432"`

	// User is the database user (default: postgres)
	User string `envconfig:"DB_USER" default:"postgres"`

	// Password is the database password (required in production)
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`

	// Name is the database name (default: raidmaster)
	Name string `envconfig:"DB_NAME" default:"raidmaster"`

	// SSLMode is the SSL mode for the connection (default: disable)
	SSLMode string `envconfig:"DB_SSLMODE" default:"disable"`

	// MaxOpenConns is the maximum number of open connections (default: 10)
	MaxOpenConns int `envconfig:"DB_MAX_OPEN_CONNS" default:"10"`

	// MaxIdleConns is the maximum number of idle connections (default: 2)
	MaxIdleConns int `envconfig:"DB_MAX_IDLE_CONNS" default:"2"`

	// ConnMaxLifetime is the maximum lifetime of a connection (default: 5m)
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	// Level is the log level: debug, info, warn, error (default: info)
	Level string `envconfig:"LOG_LEVEL" default:"info"`

	// Format is the log format: json, text, plain, pretty (default: json)
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

// SummaryConfig holds the Gemini settings. An empty key disables the call
// and every submission uses the local fallback summary.
type SummaryConfig struct {
	APIKey  string        `envconfig:"GEMINI_API_KEY"`
	Model   string        `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash"`
	Timeout time.Duration `envconfig:"SUMMARY_TIMEOUT" default:"10s"`
}

// NotifyConfig holds webhook delivery settings. The URL itself lives in
// the form configuration document.
type NotifyConfig struct {
	Timeout time.Duration `envconfig:"WEBHOOK_TIMEOUT" default:"10s"`
}

// SubmissionConfig tunes the pipeline.
type SubmissionConfig struct {
	// DisplayDelay is the cosmetic pause before a submission completes (default: 800ms)
	DisplayDelay time.Duration `envconfig:"SUBMIT_DISPLAY_DELAY" default:"800ms"`

	// SessionTTL is how long an idle session's flow state is kept (default: 2h)
	SessionTTL time.Duration `envconfig:"SESSION_TTL" default:"2h"`
}

// DSN returns the PostgreSQL connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
	)
}

// Addr returns the server address in host:port format.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load reads configuration from environment variables.
// It returns an error if required variables are missing or invalid.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env file: %w", err)
	}

	var cfg Config

	// Load each config section separately to flatten env var names
	// This allows env vars like APP_PORT instead of APP_SERVER_PORT
	sections := []struct {
		name string
		spec any
	}{
		{"server", &cfg.Server},
		{"store", &cfg.Store},
		{"database", &cfg.Database},
		{"log", &cfg.Log},
		{"summary", &cfg.Summary},
		{"notify", &cfg.Notify},
		{"submission", &cfg.Submission},
	}
	for _, s := range sections {
		if err := envconfig.Process("APP", s.spec); err != nil {
			return nil, fmt.Errorf("failed to load %s config: %w", s.name, err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	c.Store.Driver = strings.ToLower(c.Store.Driver)
	switch c.Store.Driver {
	case StoreMemory, StoreSQLite, StorePostgres:
	default:
		return fmt.Errorf("invalid APP_STORE_DRIVER %q: want memory, sqlite or postgres", c.Store.Driver)
	}
	if c.Store.Driver == StoreSQLite && c.Store.SQLitePath == "" {
		return errors.New("APP_SQLITE_PATH is required for the sqlite store")
	}
	return nil
}
