package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
	CREATE TABLE IF NOT EXISTS kv_store (
		key        TEXT PRIMARY KEY,
		value      BLOB NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)
`

// SQLite wraps a database/sql handle on a local SQLite file.
type SQLite struct {
	DB  *sql.DB
	log *slog.Logger
}

// NewSQLite opens (creating if needed) the database at path. Use ":memory:"
// for a throwaway database.
func NewSQLite(ctx context.Context, path string, log *slog.Logger) (*SQLite, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One writer keeps SQLite away from SQLITE_BUSY and keeps a :memory:
	// database on a single connection.
	conn.SetMaxOpenConns(1)

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if _, err := conn.ExecContext(ctx, sqliteSchema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Info("database connection established", "driver", "sqlite", "path", path)
	return &SQLite{DB: conn, log: log}, nil
}

// Close closes the database.
func (s *SQLite) Close() error {
	if s.DB == nil {
		return nil
	}
	s.log.Info("database connection closed", "driver", "sqlite")
	return s.DB.Close()
}

// Health checks if the database is reachable.
func (s *SQLite) Health(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}
