package domain

import "time"

// SubmissionStatus enumerates lifecycle states for service submissions.
type SubmissionStatus string

const (
	SubmissionStatusPending    SubmissionStatus = "pending"
	SubmissionStatusProcessing SubmissionStatus = "processing"
	SubmissionStatusApproved   SubmissionStatus = "approved"
	SubmissionStatusRejected   SubmissionStatus = "rejected"
)

// Submission is the aggregate for a citizen's administrative service request.
// Dates carried as YYYY-MM-DD strings, matching the portal's wire format.
type Submission struct {
	ID            string           `json:"id"`
	UserID        string           `json:"user_id"`
	UserName      string           `json:"user_name"`
	ServiceType   string           `json:"service_type"`
	Description   string           `json:"description"`
	Status        SubmissionStatus `json:"status"`
	SubmittedDate string           `json:"submitted_date"`
	CompletedDate *string          `json:"completed_date,omitempty"`
	DocumentURL   *string          `json:"document_url,omitempty"`
	Attachments   []string         `json:"attachments,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// IsTerminal reports whether the status permits no further transitions.
func (s SubmissionStatus) IsTerminal() bool {
	return s == SubmissionStatusApproved || s == SubmissionStatusRejected
}

var allowedTransitions = map[SubmissionStatus][]SubmissionStatus{
	SubmissionStatusPending:    {SubmissionStatusProcessing},
	SubmissionStatusProcessing: {SubmissionStatusApproved, SubmissionStatusRejected},
	SubmissionStatusApproved:   {},
	SubmissionStatusRejected:   {},
}

// CanTransition reports whether moving from current to next is legal.
// The lifecycle is one-directional: pending -> processing -> approved|rejected.
func CanTransition(current, next SubmissionStatus) bool {
	for _, candidate := range allowedTransitions[current] {
		if candidate == next {
			return true
		}
	}
	return false
}

// DateLayout is the portal-wide calendar date format.
const DateLayout = "2006-01-02"

// FormatDate renders a timestamp as a portal date string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
