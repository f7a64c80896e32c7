// Package repo contains the key-value store adapters.
//
// This package implements ports.KeyValueStore three ways:
//   - MemoryStore: a mutex-guarded map, for tests and throwaway runs
//   - SQLiteStore: one kv_store table in a local SQLite file
//   - PostgresStore: the same table in PostgreSQL via pgx
//
// Every Set is a single upsert statement, so a reader sees either the old
// document or the new one.
package repo
