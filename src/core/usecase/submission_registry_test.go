package usecase

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// steppingClock is a settable clock.
type steppingClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *steppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *steppingClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestSubmissionRegistry_FlowPerSession(t *testing.T) {
	f := newFixture(t)
	reg := NewSubmissionRegistry(f.pipeline(nil, nil, PipelineOptions{}), &steppingClock{now: testNow}, time.Hour)

	a := reg.Flow("a")
	assert.Same(t, a, reg.Flow("a"))
	assert.NotSame(t, a, reg.Flow("b"))
	assert.Equal(t, 2, reg.Len())
}

func TestSubmissionRegistry_SweepsIdleSessions(t *testing.T) {
	f := newFixture(t)
	clock := &steppingClock{now: testNow}
	reg := NewSubmissionRegistry(f.pipeline(nil, nil, PipelineOptions{}), clock, time.Hour)

	old := reg.Flow("idle")
	clock.Advance(30 * time.Minute)
	reg.Flow("active")
	clock.Advance(45 * time.Minute)

	reg.Flow("active")

	assert.Equal(t, 1, reg.Len())
	assert.NotSame(t, old, reg.Flow("idle"))
}

func TestSubmissionRegistry_LookupDoesNotCreate(t *testing.T) {
	f := newFixture(t)
	reg := NewSubmissionRegistry(f.pipeline(nil, nil, PipelineOptions{}), &steppingClock{now: testNow}, time.Hour)

	for i := 0; i < 3; i++ {
		flow, ok := reg.Lookup("anonymous")
		assert.False(t, ok)
		assert.Nil(t, flow)
	}
	assert.Zero(t, reg.Len())

	created := reg.Flow("s1")
	got, ok := reg.Lookup("s1")
	assert.True(t, ok)
	assert.Same(t, created, got)
	assert.Equal(t, 1, reg.Len())
}

func TestSubmissionRegistry_LookupRefreshesIdleTimer(t *testing.T) {
	f := newFixture(t)
	clock := &steppingClock{now: testNow}
	reg := NewSubmissionRegistry(f.pipeline(nil, nil, PipelineOptions{}), clock, time.Hour)
	flow := reg.Flow("s1")

	clock.Advance(50 * time.Minute)
	_, ok := reg.Lookup("s1")
	assert.True(t, ok)
	clock.Advance(50 * time.Minute)

	got, ok := reg.Lookup("s1")
	assert.True(t, ok)
	assert.Same(t, flow, got)
}
