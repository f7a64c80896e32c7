package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"raidmaster/src/core/domain"
	"raidmaster/src/core/ports"
)

// AdminGate is the local-session gate in front of the settings screens.
// It compares a shared string for equality and nothing more: no hashing,
// no lockout, no expiry.
type AdminGate struct {
	store ports.KeyValueStore
	log   *slog.Logger
}

func NewAdminGate(store ports.KeyValueStore, log *slog.Logger) *AdminGate {
	return &AdminGate{store: store, log: log}
}

// Secret returns the stored gate value or the fallback constant.
func (g *AdminGate) Secret(ctx context.Context) (string, error) {
	raw, ok, err := g.store.Get(ctx, ports.KeyAdminSecret)
	if err != nil {
		return "", fmt.Errorf("failed to read admin secret: %w", err)
	}
	if !ok || len(raw) == 0 {
		return domain.DefaultAdminSecret, nil
	}
	return string(raw), nil
}

// Verify checks a presented secret.
func (g *AdminGate) Verify(ctx context.Context, presented string) error {
	secret, err := g.Secret(ctx)
	if err != nil {
		return err
	}
	if presented != secret {
		return domain.NewUnauthorizedError("invalid admin secret")
	}
	return nil
}

// ChangeSecret stores a new gate value. A blank value leaves the current
// one in place.
func (g *AdminGate) ChangeSecret(ctx context.Context, next string) (bool, error) {
	next = strings.TrimSpace(next)
	if next == "" {
		return false, nil
	}
	if err := g.store.Set(ctx, ports.KeyAdminSecret, []byte(next)); err != nil {
		return false, fmt.Errorf("failed to write admin secret: %w", err)
	}
	g.log.Info("admin secret changed")
	return true, nil
}
