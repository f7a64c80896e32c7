package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raidmaster/src/core/domain"
)

func TestShareService_ShareURL(t *testing.T) {
	tests := []struct {
		name      string
		publicURL string
		current   string
		want      string
		wantErr   bool
	}{
		{name: "configured wins", publicURL: "https://raid.example.test/", current: "http://localhost:8080/", want: "https://raid.example.test/"},
		{name: "configured wins over blob", publicURL: "https://raid.example.test/", current: "blob:https://x/1", want: "https://raid.example.test/"},
		{name: "current address", current: "http://localhost:8080/", want: "http://localhost:8080/"},
		{name: "blob address", current: "blob:https://x/1", wantErr: true},
		{name: "nothing", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			cfg := domain.DefaultFormConfig()
			cfg.PublicURL = tt.publicURL
			require.NoError(t, f.configs.Save(context.Background(), cfg))

			got, err := f.share.ShareURL(context.Background(), tt.current)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, domain.IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShareService_RosterExportEmpty(t *testing.T) {
	f := newFixture(t)

	_, err := f.share.RosterExport(context.Background())

	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestShareService_RosterExport(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	first := record("A")
	first.GameID = "Yuna"
	first.Level = "85"
	first.Job = "牧師"
	first.Bosses = []string{"b1", "gone"}
	first.Dates = []string{"2026-10-21", "2026-10-22"}
	second := record("B")
	second.GameID = "Kai"
	second.Bosses = []string{"b2"}
	require.NoError(t, f.records.Append(ctx, first))
	require.NoError(t, f.records.Append(ctx, second))

	got, err := f.share.RosterExport(ctx)
	require.NoError(t, err)

	want := strings.Join([]string{
		"📅 **最新 Raid 報名統計總表** (2026/10/19)",
		longRule,
		"1. **Kai** (Lv.60 法師) | ❄️ | 日期: 10/20",
		"2. **Yuna** (Lv.85 牧師) | 🔥👾 | 日期: 10/21, 10/22",
		longRule,
		"共計 2 人次報名",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestSuccessCopyText(t *testing.T) {
	r := record("A")
	r.GameID = "Yuna"
	r.Bosses = []string{"b1", "unknown"}
	r.Dates = []string{"2026-10-21", "2026-10-22"}
	cfg := domain.DefaultFormConfig()

	got := SuccessCopyText(r, domain.SummaryResult{Summary: "出發吧"}, cfg)

	want := strings.Join([]string{
		"🎮 **Raid 報名確認**",
		shortRule,
		"👤 **ID**: Yuna",
		"📈 **等級**: 60",
		"🛡️ **職業**: 法師",
		"👹 **挑戰**: 🔥炎魔巴洛克、unknown",
		"📅 **日期**: 2026-10-21, 2026-10-22",
		"💬 **備註**: 無",
		shortRule,
		"✨ *出發吧*",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestMonthDay(t *testing.T) {
	assert.Equal(t, "10/21", monthDay("2026-10-21"))
	assert.Equal(t, "garbage", monthDay("garbage"))
}
