package domain

import "fmt"

// DefaultAdminSecret is the local-session gate value used until an
// administrator stores a different one.
const DefaultAdminSecret = "admin888"

// FallbackTips is the tip shown when the summary collaborator is unavailable.
const FallbackTips = "請準時上線，並準備好足夠的水藥與增益道具。"

// DefaultFormConfig returns a fresh copy of the built-in configuration.
func DefaultFormConfig() *FormConfig {
	return &FormConfig{
		Labels: Labels{
			Title:    "RaidMaster HUB",
			Subtitle: "專業突襲王團報名系統",
			GameID:   "遊戲名稱 ID",
			Level:    "等級",
			Job:      "職業",
			Bosses:   "挑戰 BOSS",
			Dates:    "報名日期",
			Remarks:  "備註",
		},
		Jobs: []string{"戰士", "法師", "弓箭手", "牧師", "刺客", "聖騎士", "術士", "德魯伊"},
		Bosses: []Encounter{
			{ID: "b1", Name: "炎魔巴洛克", Difficulty: "Hard", Icon: "🔥"},
			{ID: "b2", Name: "寒冰龍王", Difficulty: "Extreme", Icon: "❄️"},
		},
	}
}

// FallbackSummary derives a summary from the record's own fields.
func FallbackSummary(r RegistrationRecord) *SummaryResult {
	return &SummaryResult{
		Summary: fmt.Sprintf("%s (Lv.%s %s) 已成功報名參加突襲任務。", r.GameID, r.Level, r.Job),
		Tips:    FallbackTips,
	}
}
