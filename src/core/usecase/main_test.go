package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"

	"raidmaster/src/core/domain"
	"raidmaster/src/core/ports"
	"raidmaster/src/infra/logger"
	"raidmaster/src/infra/repo"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

var testNow = time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC)

// failingStore returns err from every operation.
type failingStore struct{ err error }

func (s failingStore) Health(context.Context) error { return s.err }
func (s failingStore) Get(context.Context, ports.StoreKey) ([]byte, bool, error) {
	return nil, false, s.err
}
func (s failingStore) Set(context.Context, ports.StoreKey, []byte) error { return s.err }
func (s failingStore) Delete(context.Context, ports.StoreKey) error      { return s.err }

// readOnlyStore serves reads from an inner store and fails writes.
type readOnlyStore struct {
	ports.KeyValueStore
}

func (readOnlyStore) Set(context.Context, ports.StoreKey, []byte) error {
	return errors.New("disk full")
}

type stubSummarizer struct {
	mu     sync.Mutex
	calls  int
	result *domain.SummaryResult
	err    error
	panic  any
	block  bool
}

func (s *stubSummarizer) Generate(ctx context.Context, _ domain.RegistrationRecord) (*domain.SummaryResult, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.panic != nil {
		panic(s.panic)
	}
	if s.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return s.result, s.err
}

type stubNotifier struct {
	mu      sync.Mutex
	calls   int
	ok      bool
	err     error
	panic   any
	lastCfg domain.FormConfig
	lastSum domain.SummaryResult
}

func (n *stubNotifier) Notify(_ context.Context, _ domain.RegistrationRecord, sum domain.SummaryResult, cfg domain.FormConfig) (bool, error) {
	n.mu.Lock()
	n.calls++
	n.lastCfg = cfg
	n.lastSum = sum
	n.mu.Unlock()
	if n.panic != nil {
		panic(n.panic)
	}
	return n.ok, n.err
}

func (n *stubNotifier) Calls() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.calls
}

type fixture struct {
	store    ports.KeyValueStore
	configs  *FormConfigService
	records  *RecordService
	gate     *AdminGate
	share    *ShareService
	calendar *CalendarService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWithStore(t, repo.NewMemoryStore())
}

func newFixtureWithStore(t *testing.T, store ports.KeyValueStore) *fixture {
	t.Helper()
	log := logger.Discard()
	clock := fixedClock{t: testNow}
	configs := NewFormConfigService(store, log)
	records := NewRecordService(store, log)
	return &fixture{
		store:    store,
		configs:  configs,
		records:  records,
		gate:     NewAdminGate(store, log),
		share:    NewShareService(configs, records, clock),
		calendar: NewCalendarService(clock),
	}
}

func (f *fixture) pipeline(sum ports.SummaryGenerator, notifier ports.Notifier, opts PipelineOptions) *SubmissionPipeline {
	if opts.Clock == nil {
		opts.Clock = fixedClock{t: testNow}
	}
	return NewSubmissionPipeline(f.configs, f.records, sum, notifier, opts, logger.Discard())
}

func record(id string) domain.RegistrationRecord {
	return domain.RegistrationRecord{
		ID:        id,
		Timestamp: testNow.UnixMilli(),
		GameID:    "player-" + id,
		Level:     "60",
		Job:       "法師",
		Bosses:    []string{"b1"},
		Dates:     []string{"2026-10-20"},
	}
}
