package ports

import (
	"context"
	"time"

	"raidmaster/src/core/domain"
)

// SummaryGenerator produces a short narrative and tactical tip for a
// registration. Implementations may fail; callers fall back locally.
type SummaryGenerator interface {
	Generate(ctx context.Context, record domain.RegistrationRecord) (*domain.SummaryResult, error)
}

// Notifier delivers a submission alert to the configured webhook. It
// returns false when the endpoint rejected the delivery.
type Notifier interface {
	Notify(ctx context.Context, record domain.RegistrationRecord, summary domain.SummaryResult, cfg domain.FormConfig) (bool, error)
}

// Clock abstracts the current time for the pipeline and calendar.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
