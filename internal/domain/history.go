package domain

import "time"

// StatusChange records a single submission status transition for audit.
type StatusChange struct {
	ID           string           `json:"id"`
	SubmissionID string           `json:"submission_id"`
	ActorID      string           `json:"actor_id"`
	OldStatus    SubmissionStatus `json:"old_status"`
	NewStatus    SubmissionStatus `json:"new_status"`
	Note         string           `json:"note,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
}
