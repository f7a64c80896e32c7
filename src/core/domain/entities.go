package domain

// SubmissionState is the lifecycle of a single registration flow.
type SubmissionState string

const (
	StateForm       SubmissionState = "FORM"
	StateSubmitting SubmissionState = "SUBMITTING"
	StateComplete   SubmissionState = "COMPLETE"
)

// Encounter is a selectable raid target in the form catalog.
type Encounter struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Difficulty string `json:"difficulty"`
	Icon       string `json:"icon"`
}

// Labels holds the customizable display strings of the form.
type Labels struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	GameID   string `json:"gameId"`
	Level    string `json:"level"`
	Job      string `json:"job"`
	Bosses   string `json:"bosses"`
	Dates    string `json:"dates"`
	Remarks  string `json:"remarks"`
}

// FormConfig is the whole configuration document. It is only ever replaced
// as a unit.
type FormConfig struct {
	Labels            Labels      `json:"labels"`
	Jobs              []string    `json:"jobs"`
	Bosses            []Encounter `json:"bosses"`
	DiscordWebhookURL string      `json:"discordWebhookUrl,omitempty"`
	PublicURL         string      `json:"publicUrl,omitempty"`
}

// FindEncounter returns the catalog entry with the given id.
func (c *FormConfig) FindEncounter(id string) (Encounter, bool) {
	for _, b := range c.Bosses {
		if b.ID == id {
			return b, true
		}
	}
	return Encounter{}, false
}

// HasWebhook reports whether submissions should be forwarded.
func (c *FormConfig) HasWebhook() bool {
	return c.DiscordWebhookURL != ""
}

// Candidate is a registration as submitted by the registrant, before the
// pipeline assigns identity.
type Candidate struct {
	GameID  string   `json:"gameId"`
	Level   string   `json:"level"`
	Job     string   `json:"job"`
	Bosses  []string `json:"bosses"`
	Dates   []string `json:"dates"`
	Remarks string   `json:"remarks"`
}

// RegistrationRecord is one persisted submission. Records are never
// modified after creation.
type RegistrationRecord struct {
	ID        string   `json:"id"`
	Timestamp int64    `json:"timestamp"`
	GameID    string   `json:"gameId"`
	Level     string   `json:"level"`
	Job       string   `json:"job"`
	Bosses    []string `json:"bosses"`
	Dates     []string `json:"dates"`
	Remarks   string   `json:"remarks"`
}

// NewRegistrationRecord stamps a candidate with an id and creation time in
// unix milliseconds.
func NewRegistrationRecord(id string, timestampMillis int64, c Candidate) RegistrationRecord {
	return RegistrationRecord{
		ID:        id,
		Timestamp: timestampMillis,
		GameID:    c.GameID,
		Level:     c.Level,
		Job:       c.Job,
		Bosses:    append([]string(nil), c.Bosses...),
		Dates:     append([]string(nil), c.Dates...),
		Remarks:   c.Remarks,
	}
}

// SummaryResult is the per-submission narrative produced by the summary
// collaborator, or its local fallback.
type SummaryResult struct {
	Summary string `json:"summary"`
	Tips    string `json:"tips"`
}
