package repo

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"raidmaster/src/core/ports"
	"raidmaster/src/infra/db"
)

// PostgresStore implements KeyValueStore using pgx.
type PostgresStore struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// NewPostgresStore constructs a store backed by Postgres.
func NewPostgresStore(pg *db.Postgres, log *slog.Logger) *PostgresStore {
	return &PostgresStore{
		pool: pg.Pool,
		log:  log,
	}
}

var _ ports.KeyValueStore = (*PostgresStore)(nil)

func (r *PostgresStore) Health(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *PostgresStore) Get(ctx context.Context, key ports.StoreKey) ([]byte, bool, error) {
	const q = `
		SELECT value
		FROM kv_store
		WHERE key = $1
	`
	var value []byte
	if err := r.pool.QueryRow(ctx, q, string(key)).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return value, true, nil
}

func (r *PostgresStore) Set(ctx context.Context, key ports.StoreKey, value []byte) error {
	const q = `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`
	_, err := r.pool.Exec(ctx, q, string(key), value)
	return err
}

func (r *PostgresStore) Delete(ctx context.Context, key ports.StoreKey) error {
	const q = `
		DELETE FROM kv_store
		WHERE key = $1
	`
	_, err := r.pool.Exec(ctx, q, string(key))
	return err
}
