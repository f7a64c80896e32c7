package usecase

import (
	"context"
	"fmt"
	"strings"

	"raidmaster/src/core/domain"
	"raidmaster/src/core/ports"
)

const (
	shortRule = "━━━━━━━━━━━━━━"
	longRule  = "━━━━━━━━━━━━━━━━━━━━"
	noRemarks = "無"
)

// ShareService produces the text blocks the front end copies to the
// clipboard: the public form link, a submission confirmation, and the
// roster digest.
type ShareService struct {
	configs *FormConfigService
	records *RecordService
	clock   ports.Clock
}

func NewShareService(configs *FormConfigService, records *RecordService, clock ports.Clock) *ShareService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	return &ShareService{configs: configs, records: records, clock: clock}
}

// ShareURL picks the link to hand out: the configured public URL, else the
// URL the caller is on. Temporary blob: URLs cannot be shared.
func (s *ShareService) ShareURL(ctx context.Context, currentURL string) (string, error) {
	cfg, err := s.configs.Load(ctx)
	if err != nil {
		return "", err
	}
	if cfg.PublicURL != "" {
		return cfg.PublicURL, nil
	}
	if strings.HasPrefix(currentURL, "blob:") {
		return "", domain.NewValidationError("publicUrl", "current address is temporary; set a public form URL in settings first")
	}
	if currentURL == "" {
		return "", domain.NewValidationError("publicUrl", "no public form URL configured")
	}
	return currentURL, nil
}

// RosterExport renders every record as a numbered digest.
func (s *ShareService) RosterExport(ctx context.Context) (string, error) {
	records, err := s.records.List(ctx)
	if err != nil {
		return "", err
	}
	if len(records) == 0 {
		return "", domain.NewNotFoundError("no records to export")
	}
	cfg, err := s.configs.Load(ctx)
	if err != nil {
		return "", err
	}
	return RosterExportText(records, cfg, s.clock.Now().Format("2006/1/2")), nil
}

// SuccessCopyText is the confirmation block shown after a submission.
func SuccessCopyText(r domain.RegistrationRecord, summary domain.SummaryResult, cfg *domain.FormConfig) string {
	names := make([]string, 0, len(r.Bosses))
	for _, id := range r.Bosses {
		if b, ok := cfg.FindEncounter(id); ok {
			names = append(names, b.Icon+b.Name)
		} else {
			names = append(names, id)
		}
	}

	var b strings.Builder
	b.WriteString("🎮 **Raid 報名確認**\n")
	b.WriteString(shortRule + "\n")
	fmt.Fprintf(&b, "👤 **ID**: %s\n", r.GameID)
	fmt.Fprintf(&b, "📈 **%s**: %s\n", cfg.Labels.Level, r.Level)
	fmt.Fprintf(&b, "🛡️ **職業**: %s\n", r.Job)
	fmt.Fprintf(&b, "👹 **挑戰**: %s\n", strings.Join(names, "、"))
	fmt.Fprintf(&b, "📅 **日期**: %s\n", strings.Join(r.Dates, ", "))
	fmt.Fprintf(&b, "💬 **備註**: %s\n", orDefault(r.Remarks, noRemarks))
	b.WriteString(shortRule + "\n")
	fmt.Fprintf(&b, "✨ *%s*", summary.Summary)
	return b.String()
}

// RosterExportText renders records in list order. dateLabel is the export
// date shown in the heading.
func RosterExportText(records []domain.RegistrationRecord, cfg *domain.FormConfig, dateLabel string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📅 **最新 Raid 報名統計總表** (%s)\n", dateLabel)
	b.WriteString(longRule + "\n")
	for i, r := range records {
		var icons strings.Builder
		for _, id := range r.Bosses {
			if e, ok := cfg.FindEncounter(id); ok && e.Icon != "" {
				icons.WriteString(e.Icon)
			} else {
				icons.WriteString("👾")
			}
		}
		dates := make([]string, 0, len(r.Dates))
		for _, d := range r.Dates {
			dates = append(dates, monthDay(d))
		}
		fmt.Fprintf(&b, "%d. **%s** (Lv.%s %s) | %s | 日期: %s\n",
			i+1, r.GameID, r.Level, r.Job, icons.String(), strings.Join(dates, ", "))
	}
	b.WriteString(longRule + "\n")
	fmt.Fprintf(&b, "共計 %d 人次報名", len(records))
	return b.String()
}

// monthDay turns YYYY-MM-DD into MM/DD; other shapes pass through.
func monthDay(iso string) string {
	parts := strings.Split(iso, "-")
	if len(parts) < 2 {
		return iso
	}
	return strings.Join(parts[1:], "/")
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
