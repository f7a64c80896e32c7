package dto

import "raidmaster/src/core/domain"

// SubmitRegistrationRequest is the payload for POST /v1/registrations.
// Required-field checks happen in the submission flow so that a failure
// is reported with the field name and leaves the flow in FORM.
type SubmitRegistrationRequest struct {
	GameID  string   `json:"gameId"`
	Level   string   `json:"level"`
	Job     string   `json:"job"`
	Bosses  []string `json:"bosses"`
	Dates   []string `json:"dates"`
	Remarks string   `json:"remarks"`
}

// ToCandidate converts the request to the domain input.
func (r *SubmitRegistrationRequest) ToCandidate() domain.Candidate {
	return domain.Candidate{
		GameID:  r.GameID,
		Level:   r.Level,
		Job:     r.Job,
		Bosses:  r.Bosses,
		Dates:   r.Dates,
		Remarks: r.Remarks,
	}
}

// SubmissionResponse is returned by the registration endpoints.
type SubmissionResponse struct {
	State    domain.SubmissionState     `json:"state"`
	Record   *domain.RegistrationRecord `json:"record,omitempty"`
	Summary  *domain.SummaryResult      `json:"summary,omitempty"`
	Notified bool                       `json:"notified"`
	CopyText string                     `json:"copyText,omitempty"`
}

// PublicConfigResponse is the configuration as shown to registrants; the
// webhook URL is withheld.
type PublicConfigResponse struct {
	Labels    domain.Labels      `json:"labels"`
	Jobs      []string           `json:"jobs"`
	Bosses    []domain.Encounter `json:"bosses"`
	PublicURL string             `json:"publicUrl,omitempty"`
}

// PublicConfigFromDomain strips integration secrets from cfg.
func PublicConfigFromDomain(cfg *domain.FormConfig) PublicConfigResponse {
	return PublicConfigResponse{
		Labels:    cfg.Labels,
		Jobs:      cfg.Jobs,
		Bosses:    cfg.Bosses,
		PublicURL: cfg.PublicURL,
	}
}

// RecordsResponse lists the roster.
type RecordsResponse struct {
	Records []domain.RegistrationRecord `json:"records"`
	Total   int                         `json:"total"`
}

// TextResponse carries a block of text meant for the clipboard.
type TextResponse struct {
	Text string `json:"text"`
}
