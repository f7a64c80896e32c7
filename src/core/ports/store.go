// Package ports defines interfaces (ports) that connect core domain to infrastructure.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live in src/infra. This ensures the core has no dependency on infrastructure.
package ports

import "context"

// StoreKey names one slot in the key-value store.
type StoreKey string

// The three logical slots of persisted state.
const (
	KeyFormConfig  StoreKey = "raid_master_config"
	KeyRecords     StoreKey = "raid_master_records"
	KeyAdminSecret StoreKey = "raid_master_admin_pwd"
)

// Repository is the base interface for all storage adapters.
type Repository interface {
	// Health checks if the underlying storage is reachable.
	Health(ctx context.Context) error
}

// KeyValueStore persists whole serialized documents under a key.
//
// Set replaces the previous value in a single step; readers never observe a
// partially written document. Get reports ok=false for a missing key.
type KeyValueStore interface {
	Repository

	Get(ctx context.Context, key StoreKey) (value []byte, ok bool, err error)
	Set(ctx context.Context, key StoreKey, value []byte) error
	Delete(ctx context.Context, key StoreKey) error
}
