package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raidmaster/src/core/domain"
	"raidmaster/src/core/ports"
)

func ids(records []domain.RegistrationRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func TestRecordService_ListEmpty(t *testing.T) {
	f := newFixture(t)

	got, err := f.records.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRecordService_AppendIsNewestFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, f.records.Append(ctx, record(id)))
	}

	got, err := f.records.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "A"}, ids(got))
}

func TestRecordService_RemoveOne(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, f.records.Append(ctx, record(id)))
	}

	require.NoError(t, f.records.RemoveOne(ctx, "B"))

	got, err := f.records.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "A"}, ids(got))
}

func TestRecordService_RemoveOneRemovesFirstMatchOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	dup := record("D")
	dup.GameID = "older"
	require.NoError(t, f.records.Append(ctx, dup))
	require.NoError(t, f.records.Append(ctx, record("D")))

	require.NoError(t, f.records.RemoveOne(ctx, "D"))

	got, err := f.records.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "older", got[0].GameID)
}

func TestRecordService_RemoveOneUnknownIsNoop(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.records.Append(ctx, record("A")))

	require.NoError(t, f.records.RemoveOne(ctx, "missing"))

	got, err := f.records.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, ids(got))
}

func TestRecordService_RemoveOneUnknownDoesNotWrite(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.records.Append(ctx, record("A")))

	ro := newFixtureWithStore(t, readOnlyStore{KeyValueStore: f.store})
	assert.NoError(t, ro.records.RemoveOne(ctx, "missing"))
}

func TestRecordService_RemoveAll(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.records.Append(ctx, record("A")))
	require.NoError(t, f.records.Append(ctx, record("B")))

	require.NoError(t, f.records.RemoveAll(ctx))

	got, err := f.records.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
	_, ok, err := f.store.Get(ctx, ports.KeyRecords)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRecordService_CorruptRosterReadsAsEmpty(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.store.Set(ctx, ports.KeyRecords, []byte(`{"oops":true}`)))

	got, err := f.records.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, f.records.Append(ctx, record("A")))
	got, err = f.records.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, ids(got))
}

func TestRecordService_ReadsOriginalDocumentShape(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	raw := `[{"id":"k3j9x0a1b","timestamp":1760000000000,"gameId":"Yuna","level":"85","job":"牧師","bosses":["b1","b2"],"dates":["2026-10-21"],"remarks":""}]`
	require.NoError(t, f.store.Set(ctx, ports.KeyRecords, []byte(raw)))

	got, err := f.records.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Yuna", got[0].GameID)
	assert.Equal(t, int64(1760000000000), got[0].Timestamp)
	assert.Equal(t, []string{"b1", "b2"}, got[0].Bosses)
}

func TestRecordService_StoredNullListsEmpty(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.store.Set(ctx, ports.KeyRecords, []byte("null")))

	got, err := f.records.List(ctx)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
