package usecase

import (
	"context"
	"log/slog"

	"raidmaster/src/core/domain"
	"raidmaster/src/core/ports"
)

// FormConfigService loads and replaces the configuration document.
type FormConfigService struct {
	store ports.KeyValueStore
	log   *slog.Logger
}

func NewFormConfigService(store ports.KeyValueStore, log *slog.Logger) *FormConfigService {
	return &FormConfigService{store: store, log: log}
}

// Load returns the stored configuration, or the built-in default when none
// is stored or the stored document is unreadable. Older documents are
// migrated on the way out.
func (s *FormConfigService) Load(ctx context.Context) (*domain.FormConfig, error) {
	var cfg domain.FormConfig
	found, err := loadDocument(ctx, s.store, ports.KeyFormConfig, &cfg)
	switch {
	case domain.IsCorruptDocument(err):
		s.log.Warn("stored form config unreadable, using defaults", "error", err)
		return domain.DefaultFormConfig(), nil
	case err != nil:
		return nil, err
	case !found:
		return domain.DefaultFormConfig(), nil
	}

	if applied := domain.MigrateFormConfig(&cfg); len(applied) > 0 {
		s.log.Debug("form config migrated on load", "migrations", applied)
	}
	return &cfg, nil
}

// Save replaces the whole configuration document. No field validation is
// done here.
func (s *FormConfigService) Save(ctx context.Context, cfg *domain.FormConfig) error {
	if cfg == nil {
		return domain.NewValidationError("config", "config is required")
	}
	if err := saveDocument(ctx, s.store, ports.KeyFormConfig, cfg); err != nil {
		return err
	}
	s.log.Info("form config saved",
		"jobs", len(cfg.Jobs),
		"bosses", len(cfg.Bosses),
		"webhook", cfg.HasWebhook(),
	)
	return nil
}
