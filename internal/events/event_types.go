package events

import (
	"time"

	"github.com/KoshiiX/Layanan-1/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventSubmissionCreated       EventType = "submission_created"
	EventSubmissionStatusChanged EventType = "submission_status_changed"
	EventNewsPublished           EventType = "news_published"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ActorID   string      `json:"actor_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// SubmissionCreatedPayload payload.
type SubmissionCreatedPayload struct {
	SubmissionID string `json:"submission_id"`
	UserID       string `json:"user_id"`
	ServiceType  string `json:"service_type"`
}

// SubmissionStatusChangedPayload payload.
type SubmissionStatusChangedPayload struct {
	SubmissionID string                  `json:"submission_id"`
	OldStatus    domain.SubmissionStatus `json:"old_status"`
	NewStatus    domain.SubmissionStatus `json:"new_status"`
	DocumentURL  string                  `json:"document_url,omitempty"`
}

// NewsPublishedPayload payload.
type NewsPublishedPayload struct {
	NewsID string `json:"news_id"`
	Title  string `json:"title"`
}
