package domain

import "strings"

// Validate enforces the submission gate: identity, level and job must be
// filled in and at least one encounter and one date selected.
func (c Candidate) Validate() error {
	switch {
	case strings.TrimSpace(c.GameID) == "":
		return NewValidationError("gameId", "game id is required")
	case strings.TrimSpace(c.Job) == "":
		return NewValidationError("job", "job is required")
	case strings.TrimSpace(c.Level) == "":
		return NewValidationError("level", "level is required")
	case len(c.Bosses) == 0:
		return NewValidationError("bosses", "select at least one encounter")
	case len(c.Dates) == 0:
		return NewValidationError("dates", "select at least one date")
	}
	return nil
}
