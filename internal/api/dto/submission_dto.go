package dto

import (
	"time"

	"github.com/KoshiiX/Layanan-1/internal/domain"
)

// CreateSubmissionRequest payload for a new service request.
type CreateSubmissionRequest struct {
	ServiceType string   `json:"service_type"`
	Description string   `json:"description"`
	Attachments []string `json:"attachments"`
}

// ApproveSubmissionRequest payload; the document reference is mandatory.
type ApproveSubmissionRequest struct {
	DocumentURL string `json:"document_url"`
}

// SubmissionResponse is the request shape returned to clients.
type SubmissionResponse struct {
	ID            string                  `json:"id"`
	UserID        string                  `json:"user_id"`
	UserName      string                  `json:"user_name"`
	ServiceType   string                  `json:"service_type"`
	Description   string                  `json:"description"`
	Status        domain.SubmissionStatus `json:"status"`
	SubmittedDate string                  `json:"submitted_date"`
	CompletedDate *string                 `json:"completed_date,omitempty"`
	DocumentURL   *string                 `json:"document_url,omitempty"`
	Attachments   []string                `json:"attachments,omitempty"`
}

// StatusChangeResponse is one transition log entry.
type StatusChangeResponse struct {
	OldStatus domain.SubmissionStatus `json:"old_status"`
	NewStatus domain.SubmissionStatus `json:"new_status"`
	ActorID   string                  `json:"actor_id"`
	CreatedAt time.Time               `json:"created_at"`
}

// SubmissionDetailResponse adds the transition history.
type SubmissionDetailResponse struct {
	SubmissionResponse
	History []StatusChangeResponse `json:"history"`
}

// NewSubmissionResponse maps the domain aggregate.
func NewSubmissionResponse(s *domain.Submission) SubmissionResponse {
	return SubmissionResponse{
		ID:            s.ID,
		UserID:        s.UserID,
		UserName:      s.UserName,
		ServiceType:   s.ServiceType,
		Description:   s.Description,
		Status:        s.Status,
		SubmittedDate: s.SubmittedDate,
		CompletedDate: s.CompletedDate,
		DocumentURL:   s.DocumentURL,
		Attachments:   s.Attachments,
	}
}

// NewSubmissionDetailResponse maps the aggregate with its history.
func NewSubmissionDetailResponse(s *domain.Submission, history []domain.StatusChange) SubmissionDetailResponse {
	entries := make([]StatusChangeResponse, 0, len(history))
	for _, change := range history {
		entries = append(entries, StatusChangeResponse{
			OldStatus: change.OldStatus,
			NewStatus: change.NewStatus,
			ActorID:   change.ActorID,
			CreatedAt: change.CreatedAt,
		})
	}
	return SubmissionDetailResponse{
		SubmissionResponse: NewSubmissionResponse(s),
		History:            entries,
	}
}
