package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"raidmaster/src/infra/config"
)

const postgresSchema = `
	CREATE TABLE IF NOT EXISTS kv_store (
		key        TEXT PRIMARY KEY,
		value      BYTEA NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)
`

// Postgres holds the pgx pool behind the postgres store driver.
type Postgres struct {
	Pool *pgxpool.Pool
	log  *slog.Logger
}

// NewPostgres connects, pings, and creates the kv_store table if needed.
func NewPostgres(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (*Postgres, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	poolCfg.MaxConns = int32(cfg.MaxOpenConns)
	poolCfg.MinConns = int32(cfg.MaxIdleConns)
	poolCfg.MaxConnLifetime = cfg.ConnMaxLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	log.Info("database connection established",
		"driver", "postgres",
		"host", cfg.Host,
		"database", cfg.Name,
	)
	return &Postgres{Pool: pool, log: log}, nil
}

func migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

func (p *Postgres) Close() {
	if p.Pool == nil {
		return
	}
	p.Pool.Close()
	p.log.Info("database connection closed", "driver", "postgres")
}

func (p *Postgres) Health(ctx context.Context) error {
	return p.Pool.Ping(ctx)
}
