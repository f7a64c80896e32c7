package usecase

import (
	"context"
	"log/slog"

	"raidmaster/src/core/ports"
)

const (
	HealthOK       = "ok"
	HealthDegraded = "degraded"
)

type HealthStatus struct {
	Status     string                     `json:"status"`
	Components map[string]ComponentHealth `json:"components,omitempty"`
}

type ComponentHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthService checks the persisted store. The summary and webhook
// collaborators are not checked since their failures never fail a
// submission.
type HealthService struct {
	store ports.Repository
	log   *slog.Logger
}

func NewHealthService(store ports.Repository, log *slog.Logger) *HealthService {
	return &HealthService{store: store, log: log}
}

func (s *HealthService) Check(ctx context.Context) *HealthStatus {
	out := &HealthStatus{Status: HealthOK, Components: map[string]ComponentHealth{}}
	if s.store == nil {
		return out
	}

	if err := s.store.Health(ctx); err != nil {
		s.log.Warn("store health check failed", "error", err)
		out.Status = HealthDegraded
		out.Components["store"] = ComponentHealth{Status: "unhealthy", Message: err.Error()}
		return out
	}
	out.Components["store"] = ComponentHealth{Status: "healthy"}
	return out
}
