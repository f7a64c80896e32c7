// Package discord implements the notification collaborator as a Discord
// webhook post carrying one embed.
package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"raidmaster/src/core/domain"
	"raidmaster/src/core/ports"
)

const (
	embedColor  = 0x6366f1
	footerText  = "RaidMaster 自動報名系統"
	unknownIcon = "👾"
)

// WebhookNotifier posts submission alerts to the webhook URL stored in the
// form configuration.
type WebhookNotifier struct {
	http *http.Client
	now  func() time.Time
	log  *slog.Logger
}

var _ ports.Notifier = (*WebhookNotifier)(nil)

// NewWebhookNotifier builds a notifier whose requests time out after timeout.
func NewWebhookNotifier(timeout time.Duration, log *slog.Logger) *WebhookNotifier {
	return &WebhookNotifier{
		http: &http.Client{Timeout: timeout},
		now:  time.Now,
		log:  log,
	}
}

// Notify implements ports.Notifier. It returns false without error when no
// URL is configured or the endpoint answers with a non-2xx status.
func (n *WebhookNotifier) Notify(ctx context.Context, record domain.RegistrationRecord, summary domain.SummaryResult, cfg domain.FormConfig) (bool, error) {
	if cfg.DiscordWebhookURL == "" {
		return false, nil
	}

	body, err := json.Marshal(&discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{BuildEmbed(record, summary, cfg, n.now())},
	})
	if err != nil {
		return false, fmt.Errorf("failed to encode webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.DiscordWebhookURL, bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.http.Do(req)
	if err != nil {
		return false, fmt.Errorf("webhook request failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		n.log.Warn("webhook endpoint rejected delivery", "record_id", record.ID, "status", resp.StatusCode)
		return false, nil
	}
	return true, nil
}

// BuildEmbed lays out a registration as a Discord embed.
func BuildEmbed(r domain.RegistrationRecord, summary domain.SummaryResult, cfg domain.FormConfig, at time.Time) *discordgo.MessageEmbed {
	bosses := make([]string, 0, len(r.Bosses))
	for _, id := range r.Bosses {
		icon, name := unknownIcon, id
		if e, ok := cfg.FindEncounter(id); ok {
			if e.Icon != "" {
				icon = e.Icon
			}
			if e.Name != "" {
				name = e.Name
			}
		}
		bosses = append(bosses, icon+" "+name)
	}

	remarks := r.Remarks
	if remarks == "" {
		remarks = "無"
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("⚔️ 新的突襲報名：%s", r.GameID),
		Description: fmt.Sprintf("有人在 **%s** 提交了報名表單！", cfg.Labels.Title),
		Color:       embedColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "📈 " + cfg.Labels.Level, Value: r.Level, Inline: true},
			{Name: "🛡️ " + cfg.Labels.Job, Value: r.Job, Inline: true},
			{Name: "📅 " + cfg.Labels.Dates, Value: strings.Join(r.Dates, ", ")},
			{Name: "👹 " + cfg.Labels.Bosses, Value: strings.Join(bosses, "、")},
			{Name: "💬 " + cfg.Labels.Remarks, Value: remarks},
			{Name: "✨ AI 摘要與戰略", Value: fmt.Sprintf("**摘要**: %s\n**建議**: %s", summary.Summary, summary.Tips)},
		},
		Timestamp: at.Format(time.RFC3339),
		Footer:    &discordgo.MessageEmbedFooter{Text: footerText},
	}
}
