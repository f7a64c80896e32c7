package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raidmaster/src/core/domain"
	"raidmaster/src/core/ports"
)

func TestFormConfigService_LoadEmptyStoreReturnsDefault(t *testing.T) {
	f := newFixture(t)

	cfg, err := f.configs.Load(context.Background())

	require.NoError(t, err)
	if diff := cmp.Diff(domain.DefaultFormConfig(), cfg); diff != "" {
		t.Errorf("default config mismatch (-want +got):\n%s", diff)
	}
}

func TestFormConfigService_LoadBackfillsLevelLabel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	legacy := `{
		"labels": {"title":"Old Guild","subtitle":"s","gameId":"ID","job":"J","bosses":"B","dates":"D","remarks":"R"},
		"jobs": ["Tank"],
		"bosses": [{"id":"z","name":"Zed","difficulty":"Normal","icon":"Z"}],
		"discordWebhookUrl": "https://hooks.example/1",
		"publicUrl": "https://form.example"
	}`
	require.NoError(t, f.store.Set(ctx, ports.KeyFormConfig, []byte(legacy)))

	cfg, err := f.configs.Load(ctx)
	require.NoError(t, err)

	want := &domain.FormConfig{
		Labels: domain.Labels{
			Title: "Old Guild", Subtitle: "s", GameID: "ID", Level: "等級",
			Job: "J", Bosses: "B", Dates: "D", Remarks: "R",
		},
		Jobs:              []string{"Tank"},
		Bosses:            []domain.Encounter{{ID: "z", Name: "Zed", Difficulty: "Normal", Icon: "Z"}},
		DiscordWebhookURL: "https://hooks.example/1",
		PublicURL:         "https://form.example",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("migrated config mismatch (-want +got):\n%s", diff)
	}
}

func TestFormConfigService_SaveReplacesWholeDocument(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first := domain.DefaultFormConfig()
	first.PublicURL = "https://form.example"
	require.NoError(t, f.configs.Save(ctx, first))

	second := &domain.FormConfig{
		Labels: domain.DefaultFormConfig().Labels,
		Jobs:   []string{"Only"},
		Bosses: []domain.Encounter{},
	}
	require.NoError(t, f.configs.Save(ctx, second))

	got, err := f.configs.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Only"}, got.Jobs)
	assert.Empty(t, got.Bosses)
	assert.Empty(t, got.PublicURL, "fields absent from the new document are not merged from the old one")
}

func TestFormConfigService_CorruptDocumentFallsBackToDefault(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.store.Set(ctx, ports.KeyFormConfig, []byte("{not json")))

	cfg, err := f.configs.Load(ctx)

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultFormConfig(), cfg)
}

func TestFormConfigService_StoreErrorPropagates(t *testing.T) {
	boom := errors.New("connection refused")
	f := newFixtureWithStore(t, failingStore{err: boom})

	_, err := f.configs.Load(context.Background())

	assert.ErrorIs(t, err, boom)
}

func TestFormConfigService_SaveNil(t *testing.T) {
	f := newFixture(t)
	err := f.configs.Save(context.Background(), nil)
	assert.True(t, domain.IsValidationError(err))
}

func TestFormConfigService_StoredNullReturnsDefault(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.store.Set(ctx, ports.KeyFormConfig, []byte(" null \n")))

	cfg, err := f.configs.Load(ctx)

	require.NoError(t, err)
	if diff := cmp.Diff(domain.DefaultFormConfig(), cfg); diff != "" {
		t.Errorf("null document should read as default (-want +got):\n%s", diff)
	}
}
