package repo

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"raidmaster/src/core/ports"
	"raidmaster/src/infra/db"
)

// SQLiteStore implements KeyValueStore on a SQLite kv_store table.
type SQLiteStore struct {
	db  *sql.DB
	log *slog.Logger
}

// NewSQLiteStore constructs a store backed by SQLite.
func NewSQLiteStore(lite *db.SQLite, log *slog.Logger) *SQLiteStore {
	return &SQLiteStore{db: lite.DB, log: log}
}

var _ ports.KeyValueStore = (*SQLiteStore)(nil)

func (s *SQLiteStore) Health(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) Get(ctx context.Context, key ports.StoreKey) ([]byte, bool, error) {
	const q = `SELECT value FROM kv_store WHERE key = ?`
	var value []byte
	if err := s.db.QueryRowContext(ctx, q, string(key)).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return value, true, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key ports.StoreKey, value []byte) error {
	const q = `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	_, err := s.db.ExecContext(ctx, q, string(key), value)
	return err
}

func (s *SQLiteStore) Delete(ctx context.Context, key ports.StoreKey) error {
	const q = `DELETE FROM kv_store WHERE key = ?`
	_, err := s.db.ExecContext(ctx, q, string(key))
	return err
}
