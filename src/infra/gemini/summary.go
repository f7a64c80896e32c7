// Package gemini implements the summary collaborator on Google's Gemini API.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"raidmaster/src/core/domain"
	"raidmaster/src/core/ports"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Options configures the generator.
type Options struct {
	APIKey string
	Model  string
	// BaseURL overrides the API endpoint; empty means the public endpoint.
	BaseURL string
}

// SummaryGenerator asks Gemini for a registration summary and a tactical
// tip, constrained to a two-field JSON object.
type SummaryGenerator struct {
	client *genai.Client
	model  string
	log    *slog.Logger
}

var _ ports.SummaryGenerator = (*SummaryGenerator)(nil)

// NewSummaryGenerator creates the Gemini client.
func NewSummaryGenerator(ctx context.Context, opts Options, log *slog.Logger) (*SummaryGenerator, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if opts.Model == "" {
		opts.Model = DefaultModel
	}

	cc := &genai.ClientConfig{
		APIKey:  opts.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if opts.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: opts.BaseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &SummaryGenerator{client: client, model: opts.Model, log: log}, nil
}

var summarySchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"summary": {
			Type:        genai.TypeString,
			Description: "A professional 1-2 sentence summary of the registration.",
		},
		"tips": {
			Type:        genai.TypeString,
			Description: "A quick tactical tip for this specific job, level, and these bosses.",
		},
	},
	Required: []string{"summary", "tips"},
}

// Generate implements ports.SummaryGenerator.
func (g *SummaryGenerator) Generate(ctx context.Context, record domain.RegistrationRecord) (*domain.SummaryResult, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(buildPrompt(record)), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   summarySchema,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini generate failed: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return nil, fmt.Errorf("gemini returned an empty response")
	}

	var out domain.SummaryResult
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil, fmt.Errorf("gemini response is not the expected JSON: %w", err)
	}
	g.log.Debug("summary generated", "record_id", record.ID, "model", g.model)
	return &out, nil
}

func buildPrompt(r domain.RegistrationRecord) string {
	remarks := r.Remarks
	if remarks == "" {
		remarks = "無"
	}
	var b strings.Builder
	b.WriteString("幫我生成一段專業的遊戲突襲(Raid)報名簡短摘要與給該職業的戰鬥建議。\n")
	fmt.Fprintf(&b, "角色ID: %s\n", r.GameID)
	fmt.Fprintf(&b, "等級: %s\n", r.Level)
	fmt.Fprintf(&b, "職業: %s\n", r.Job)
	fmt.Fprintf(&b, "挑戰BOSS: %s\n", strings.Join(r.Bosses, ", "))
	fmt.Fprintf(&b, "報名日期: %s\n", strings.Join(r.Dates, ", "))
	fmt.Fprintf(&b, "備註: %s", remarks)
	return b.String()
}
