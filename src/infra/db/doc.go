// Package db opens and migrates the databases behind the key-value store.
//
// This package is responsible for:
//   - PostgreSQL connection pool initialization (pgx)
//   - SQLite file database initialization (modernc.org/sqlite, no cgo)
//   - Creating the kv_store table on startup
//   - Connection health checks
//
// Example usage:
//
//	lite, err := db.NewSQLite(ctx, cfg.Store.SQLitePath, log)
//	if err != nil {
//	    return err
//	}
//	defer lite.Close()
package db
