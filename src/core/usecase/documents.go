package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"raidmaster/src/core/domain"
	"raidmaster/src/core/ports"
)

// loadDocument decodes the JSON document stored under key into out.
// It reports found=false when the slot is empty or holds null. A value
// that does not decode yields an ErrCorruptDocument so callers can fall
// back to defaults.
func loadDocument(ctx context.Context, store ports.KeyValueStore, key ports.StoreKey, out any) (bool, error) {
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if !ok || isBlankDocument(raw) {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, &domain.DomainError{
			Base:    domain.ErrCorruptDocument,
			Message: fmt.Sprintf("%s: %v", key, err),
		}
	}
	return true, nil
}

// isBlankDocument reports an empty slot or a stored JSON null.
func isBlankDocument(raw []byte) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

// saveDocument serializes v and replaces the value stored under key.
func saveDocument(ctx context.Context, store ports.KeyValueStore, key ports.StoreKey, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := store.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
