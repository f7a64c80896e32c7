package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"raidmaster/src/core/domain"
	"raidmaster/src/core/ports"
)

const (
	// DefaultSummaryTimeout bounds the wait on the summary collaborator.
	DefaultSummaryTimeout = 10 * time.Second

	// maxIDAttempts caps regeneration when a fresh id collides.
	maxIDAttempts = 5
)

// SubmissionOutcome is what a completed submission exposes to the caller.
type SubmissionOutcome struct {
	Record   domain.RegistrationRecord `json:"record"`
	Summary  domain.SummaryResult      `json:"summary"`
	Notified bool                      `json:"notified"`
}

// PipelineOptions tunes the submission pipeline.
type PipelineOptions struct {
	SummaryTimeout time.Duration
	DisplayDelay   time.Duration
	Clock          ports.Clock
	NewID          func() string
}

// SubmissionPipeline runs one submission end to end: stamp the record, ask
// for a summary, persist, notify. Only persistence can fail the run; both
// external calls degrade to local defaults.
type SubmissionPipeline struct {
	configs    *FormConfigService
	records    *RecordService
	summarizer ports.SummaryGenerator
	notifier   ports.Notifier
	opts       PipelineOptions
	log        *slog.Logger
}

func NewSubmissionPipeline(
	configs *FormConfigService,
	records *RecordService,
	summarizer ports.SummaryGenerator,
	notifier ports.Notifier,
	opts PipelineOptions,
	log *slog.Logger,
) *SubmissionPipeline {
	if opts.SummaryTimeout <= 0 {
		opts.SummaryTimeout = DefaultSummaryTimeout
	}
	if opts.Clock == nil {
		opts.Clock = ports.SystemClock{}
	}
	if opts.NewID == nil {
		opts.NewID = func() string { return uuid.NewString() }
	}
	return &SubmissionPipeline{
		configs:    configs,
		records:    records,
		summarizer: summarizer,
		notifier:   notifier,
		opts:       opts,
		log:        log,
	}
}

// Run executes the pipeline for an already validated candidate.
func (p *SubmissionPipeline) Run(ctx context.Context, c domain.Candidate) (*SubmissionOutcome, error) {
	id, err := p.freshID(ctx)
	if err != nil {
		return nil, err
	}
	record := domain.NewRegistrationRecord(id, p.opts.Clock.Now().UnixMilli(), c)

	summary := p.summarize(ctx, record)

	if err := p.records.Append(ctx, record); err != nil {
		return nil, err
	}
	p.log.Info("registration recorded",
		"record_id", record.ID,
		"game_id", record.GameID,
		"bosses", len(record.Bosses),
		"dates", len(record.Dates),
	)

	notified := p.notify(ctx, record, summary)

	p.displayPause()

	return &SubmissionOutcome{Record: record, Summary: summary, Notified: notified}, nil
}

func (p *SubmissionPipeline) freshID(ctx context.Context) (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := p.opts.NewID()
		taken, err := p.records.Contains(ctx, id)
		if err != nil {
			return "", err
		}
		if !taken {
			return id, nil
		}
		p.log.Warn("generated record id collided, regenerating", "record_id", id)
	}
	return "", domain.NewConflictError(fmt.Sprintf("could not allocate a unique record id after %d attempts", maxIDAttempts))
}

type summaryReply struct {
	res *domain.SummaryResult
	err error
}

// summarize never fails: errors, panics, timeouts and empty replies all
// become the fallback derived from the record.
func (p *SubmissionPipeline) summarize(ctx context.Context, record domain.RegistrationRecord) domain.SummaryResult {
	fallback := *domain.FallbackSummary(record)
	if p.summarizer == nil {
		return fallback
	}

	sctx, cancel := context.WithTimeout(ctx, p.opts.SummaryTimeout)
	defer cancel()

	replies := make(chan summaryReply, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				replies <- summaryReply{err: fmt.Errorf("summary generator panicked: %v", r)}
			}
		}()
		res, err := p.summarizer.Generate(sctx, record)
		replies <- summaryReply{res: res, err: err}
	}()

	select {
	case reply := <-replies:
		if reply.err != nil {
			p.log.Warn("summary generation failed, using fallback", "record_id", record.ID, "error", reply.err)
			return fallback
		}
		if reply.res == nil || strings.TrimSpace(reply.res.Summary) == "" {
			p.log.Warn("summary generation returned nothing, using fallback", "record_id", record.ID)
			return fallback
		}
		res := *reply.res
		if strings.TrimSpace(res.Tips) == "" {
			res.Tips = fallback.Tips
		}
		return res
	case <-sctx.Done():
		p.log.Warn("summary generation timed out, using fallback", "record_id", record.ID, "timeout", p.opts.SummaryTimeout)
		return fallback
	}
}

// notify forwards the submission when a webhook is configured. Failures are
// logged and otherwise ignored.
func (p *SubmissionPipeline) notify(ctx context.Context, record domain.RegistrationRecord, summary domain.SummaryResult) (delivered bool) {
	if p.notifier == nil {
		return false
	}
	cfg, err := p.configs.Load(ctx)
	if err != nil {
		p.log.Warn("could not load form config for notification", "record_id", record.ID, "error", err)
		return false
	}
	if !cfg.HasWebhook() {
		return false
	}

	defer func() {
		if r := recover(); r != nil {
			p.log.Error("webhook notifier panicked", "record_id", record.ID, "panic", r)
			delivered = false
		}
	}()

	ok, err := p.notifier.Notify(ctx, record, summary, *cfg)
	switch {
	case err != nil:
		p.log.Error("webhook delivery failed", "record_id", record.ID, "error", err)
		return false
	case !ok:
		p.log.Error("webhook delivery rejected", "record_id", record.ID)
		return false
	}
	return true
}

func (p *SubmissionPipeline) displayPause() {
	if p.opts.DisplayDelay <= 0 {
		return
	}
	time.Sleep(p.opts.DisplayDelay)
}

// SubmissionFlow is the per-session state machine Form → Submitting →
// Complete. At most one submission is in flight per flow.
type SubmissionFlow struct {
	pipeline *SubmissionPipeline

	mu      sync.Mutex
	state   domain.SubmissionState
	outcome *SubmissionOutcome
	// gen changes on Reset so an in-flight run does not resurrect Complete.
	gen uint64
}

func NewSubmissionFlow(pipeline *SubmissionPipeline) *SubmissionFlow {
	return &SubmissionFlow{pipeline: pipeline, state: domain.StateForm}
}

// State returns the current state and, when complete, the outcome.
func (f *SubmissionFlow) State() (domain.SubmissionState, *SubmissionOutcome) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state, f.outcome
}

// Submit validates the candidate and, if it passes, runs the pipeline. A
// validation failure leaves the flow in Form with nothing persisted.
// Cancelling ctx after validation does not stop the run.
// Submitting from Complete starts over from Form.
func (f *SubmissionFlow) Submit(ctx context.Context, c domain.Candidate) (*SubmissionOutcome, error) {
	f.mu.Lock()
	if f.state == domain.StateSubmitting {
		f.mu.Unlock()
		return nil, domain.NewConflictError("a submission is already in progress")
	}
	f.state = domain.StateForm
	f.outcome = nil
	if err := c.Validate(); err != nil {
		f.mu.Unlock()
		return nil, err
	}
	f.state = domain.StateSubmitting
	gen := f.gen
	f.mu.Unlock()

	// Past validation a submission runs to the end even if the caller
	// goes away; the summary timeout still applies.
	out, err := f.pipeline.Run(context.WithoutCancel(ctx), c)

	f.mu.Lock()
	defer f.mu.Unlock()
	if gen != f.gen {
		return out, err
	}
	if err != nil {
		f.state = domain.StateForm
		return nil, err
	}
	f.state = domain.StateComplete
	f.outcome = out
	return out, nil
}

// Reset returns to Form and drops the in-memory outcome. The persisted
// record is unaffected.
func (f *SubmissionFlow) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gen++
	f.state = domain.StateForm
	f.outcome = nil
}
