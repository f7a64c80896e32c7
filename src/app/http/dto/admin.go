package dto

import "raidmaster/src/core/domain"

// AdminLoginRequest opens the settings screens.
type AdminLoginRequest struct {
	Secret string `json:"secret" binding:"required"`
}

// ChangeSecretRequest sets a new gate value. Blank keeps the current one.
type ChangeSecretRequest struct {
	Secret string `json:"secret"`
}

// SaveConfigRequest replaces the whole configuration document.
type SaveConfigRequest struct {
	Labels            domain.Labels      `json:"labels"`
	Jobs              []string           `json:"jobs"`
	Bosses            []domain.Encounter `json:"bosses"`
	DiscordWebhookURL string             `json:"discordWebhookUrl"`
	PublicURL         string             `json:"publicUrl"`
}

// ToDomain converts the request to a configuration document.
func (r *SaveConfigRequest) ToDomain() *domain.FormConfig {
	cfg := &domain.FormConfig{
		Labels:            r.Labels,
		Jobs:              r.Jobs,
		Bosses:            r.Bosses,
		DiscordWebhookURL: r.DiscordWebhookURL,
		PublicURL:         r.PublicURL,
	}
	if cfg.Jobs == nil {
		cfg.Jobs = []string{}
	}
	if cfg.Bosses == nil {
		cfg.Bosses = []domain.Encounter{}
	}
	return cfg
}
