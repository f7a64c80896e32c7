package usecase

import (
	"sync"
	"time"

	"raidmaster/src/core/domain"
	"raidmaster/src/core/ports"
)

// DefaultSessionTTL is how long an idle session's flow is kept.
const DefaultSessionTTL = 2 * time.Hour

type sessionEntry struct {
	flow     *SubmissionFlow
	lastSeen time.Time
}

// SubmissionRegistry hands out one SubmissionFlow per client session so the
// state machine survives across stateless requests.
type SubmissionRegistry struct {
	pipeline *SubmissionPipeline
	clock    ports.Clock
	ttl      time.Duration

	mu       sync.Mutex
	sessions map[string]*sessionEntry
}

func NewSubmissionRegistry(pipeline *SubmissionPipeline, clock ports.Clock, ttl time.Duration) *SubmissionRegistry {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SubmissionRegistry{
		pipeline: pipeline,
		clock:    clock,
		ttl:      ttl,
		sessions: make(map[string]*sessionEntry),
	}
}

// Flow returns the flow for sessionID, creating it on first use. Idle
// sessions are swept on each call.
func (r *SubmissionRegistry) Flow(sessionID string) *SubmissionFlow {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	r.sweepLocked(now)

	entry, ok := r.sessions[sessionID]
	if !ok {
		entry = &sessionEntry{flow: NewSubmissionFlow(r.pipeline)}
		r.sessions[sessionID] = entry
	}
	entry.lastSeen = now
	return entry.flow
}

// Lookup returns the flow for sessionID without creating one. Only a
// submission needs a flow of its own; an unknown session is in Form.
func (r *SubmissionRegistry) Lookup(sessionID string) (*SubmissionFlow, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	r.sweepLocked(now)

	entry, ok := r.sessions[sessionID]
	if !ok {
		return nil, false
	}
	entry.lastSeen = now
	return entry.flow, true
}

// Len returns the number of tracked sessions.
func (r *SubmissionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *SubmissionRegistry) sweepLocked(now time.Time) {
	for id, entry := range r.sessions {
		if now.Sub(entry.lastSeen) <= r.ttl {
			continue
		}
		if state, _ := entry.flow.State(); state == domain.StateSubmitting {
			continue
		}
		delete(r.sessions, id)
	}
}
