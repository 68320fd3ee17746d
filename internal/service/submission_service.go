package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/KoshiiX/Layanan-1/internal/domain"
	"github.com/KoshiiX/Layanan-1/internal/events"
	"github.com/KoshiiX/Layanan-1/internal/repository"
	apperrors "github.com/KoshiiX/Layanan-1/pkg/util"
)

// SubmissionService coordinates the service-request lifecycle. The
// transition rules are enforced here, not left to which actions a
// client chooses to offer.
type SubmissionService struct {
	submissions repository.SubmissionRepository
	history     repository.StatusChangeRepository
	dispatcher  events.Dispatcher
	statsCache  *DashboardCache
}

// SubmissionDependencies bundles collaborators for the service.
type SubmissionDependencies struct {
	SubmissionRepo repository.SubmissionRepository
	HistoryRepo    repository.StatusChangeRepository
	Dispatcher     events.Dispatcher
	StatsCache     *DashboardCache
}

// NewSubmissionService constructs the service.
func NewSubmissionService(deps SubmissionDependencies) *SubmissionService {
	return &SubmissionService{
		submissions: deps.SubmissionRepo,
		history:     deps.HistoryRepo,
		dispatcher:  deps.Dispatcher,
		statsCache:  deps.StatsCache,
	}
}

// SubmissionCreateInput describes a citizen's request form.
type SubmissionCreateInput struct {
	ServiceType string
	Description string
	Attachments []string
}

// Create files a new request. Status is always pending and the
// submitted date is always the current date, regardless of input.
func (s *SubmissionService) Create(ctx context.Context, user *domain.User, input SubmissionCreateInput) (*domain.Submission, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, apperrors.NewValidationError("description required", nil)
	}
	if input.ServiceType == "" {
		return nil, apperrors.NewValidationError("service type required", nil)
	}
	if !domain.KnownServiceType(input.ServiceType) {
		return nil, apperrors.NewValidationError("unknown service type", map[string]any{
			"service_type": input.ServiceType,
		})
	}

	submission := &domain.Submission{
		UserID:        user.ID,
		UserName:      user.Name,
		ServiceType:   domain.ServiceTypeName(input.ServiceType),
		Description:   description,
		Status:        domain.SubmissionStatusPending,
		SubmittedDate: domain.FormatDate(time.Now()),
		Attachments:   input.Attachments,
	}
	if err := s.submissions.Create(ctx, submission); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.invalidateStats(ctx)
	s.publishEvent(ctx, events.Event{
		Type:    events.EventSubmissionCreated,
		ActorID: user.ID,
		Payload: events.SubmissionCreatedPayload{
			SubmissionID: submission.ID,
			UserID:       user.ID,
			ServiceType:  submission.ServiceType,
		},
	})
	return submission, nil
}

// ListForUser returns the caller's own requests, optionally filtered by status.
func (s *SubmissionService) ListForUser(ctx context.Context, userID string, statuses []domain.SubmissionStatus, limit, offset int) ([]domain.Submission, error) {
	filter := repository.SubmissionFilter{
		UserID:   &userID,
		Statuses: statuses,
		Limit:    limit,
		Offset:   offset,
	}
	result, err := s.submissions.ListWithFilter(ctx, filter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return result, nil
}

// GetForUser fetches a request enforcing ownership.
func (s *SubmissionService) GetForUser(ctx context.Context, userID, submissionID string) (*domain.Submission, []domain.StatusChange, error) {
	submission, err := s.getSubmission(ctx, submissionID)
	if err != nil {
		return nil, nil, err
	}
	if submission.UserID != userID {
		return nil, nil, apperrors.NewForbidden("not your submission")
	}
	history, err := s.listHistory(ctx, submissionID)
	if err != nil {
		return nil, nil, err
	}
	return submission, history, nil
}

// ListInbox returns requests for the admin inbox. With no explicit
// statuses it shows the actionable ones: pending and processing.
func (s *SubmissionService) ListInbox(ctx context.Context, statuses []domain.SubmissionStatus, limit, offset int) ([]domain.Submission, error) {
	if len(statuses) == 0 {
		statuses = []domain.SubmissionStatus{domain.SubmissionStatusPending, domain.SubmissionStatusProcessing}
	}
	result, err := s.submissions.ListWithFilter(ctx, repository.SubmissionFilter{
		Statuses: statuses,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return result, nil
}

// ListAll returns every request, optionally filtered, for the admin history view.
func (s *SubmissionService) ListAll(ctx context.Context, statuses []domain.SubmissionStatus, limit, offset int) ([]domain.Submission, error) {
	result, err := s.submissions.ListWithFilter(ctx, repository.SubmissionFilter{
		Statuses: statuses,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return result, nil
}

// GetForAdmin fetches any request with its transition history.
func (s *SubmissionService) GetForAdmin(ctx context.Context, submissionID string) (*domain.Submission, []domain.StatusChange, error) {
	submission, err := s.getSubmission(ctx, submissionID)
	if err != nil {
		return nil, nil, err
	}
	history, err := s.listHistory(ctx, submissionID)
	if err != nil {
		return nil, nil, err
	}
	return submission, history, nil
}

// Process moves a pending request into review.
func (s *SubmissionService) Process(ctx context.Context, admin *domain.User, submissionID string) (*domain.Submission, error) {
	return s.transition(ctx, admin, submissionID, domain.SubmissionStatusProcessing, func(*domain.Submission) {})
}

// Approve completes a request in review. A document reference is
// mandatory; the completed date is stamped with the current date.
func (s *SubmissionService) Approve(ctx context.Context, admin *domain.User, submissionID, documentURL string) (*domain.Submission, error) {
	documentURL = strings.TrimSpace(documentURL)
	if documentURL == "" {
		return nil, apperrors.NewValidationError("document url required to approve", nil)
	}
	return s.transition(ctx, admin, submissionID, domain.SubmissionStatusApproved, func(submission *domain.Submission) {
		completed := domain.FormatDate(time.Now())
		submission.CompletedDate = &completed
		submission.DocumentURL = &documentURL
	})
}

// Reject closes a request in review without a document.
func (s *SubmissionService) Reject(ctx context.Context, admin *domain.User, submissionID string) (*domain.Submission, error) {
	return s.transition(ctx, admin, submissionID, domain.SubmissionStatusRejected, func(submission *domain.Submission) {
		completed := domain.FormatDate(time.Now())
		submission.CompletedDate = &completed
	})
}

func (s *SubmissionService) transition(ctx context.Context, admin *domain.User, submissionID string, next domain.SubmissionStatus, mutate func(*domain.Submission)) (*domain.Submission, error) {
	submission, err := s.getSubmission(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransition(submission.Status, next) {
		return nil, apperrors.NewConflict("illegal status transition", map[string]any{
			"from": submission.Status,
			"to":   next,
		})
	}

	oldStatus := submission.Status
	submission.Status = next
	mutate(submission)
	if err := s.submissions.Update(ctx, submission); err != nil {
		return nil, apperrors.MapError(err)
	}

	if s.history != nil {
		change := &domain.StatusChange{
			SubmissionID: submission.ID,
			ActorID:      admin.ID,
			OldStatus:    oldStatus,
			NewStatus:    next,
		}
		if err := s.history.Create(ctx, change); err != nil {
			return nil, apperrors.MapError(err)
		}
	}

	s.invalidateStats(ctx)
	payload := events.SubmissionStatusChangedPayload{
		SubmissionID: submission.ID,
		OldStatus:    oldStatus,
		NewStatus:    next,
	}
	if submission.DocumentURL != nil {
		payload.DocumentURL = *submission.DocumentURL
	}
	s.publishEvent(ctx, events.Event{
		Type:    events.EventSubmissionStatusChanged,
		ActorID: admin.ID,
		Payload: payload,
	})
	return submission, nil
}

// DashboardStats summarizes request counts per status for the admin
// dashboard, served from cache when fresh.
type DashboardStats struct {
	Pending    int `json:"pending"`
	Processing int `json:"processing"`
	Approved   int `json:"approved"`
	Rejected   int `json:"rejected"`
	Total      int `json:"total"`
}

// Stats computes dashboard counters.
func (s *SubmissionService) Stats(ctx context.Context) (*DashboardStats, error) {
	if s.statsCache != nil {
		if stats, ok := s.statsCache.Get(ctx); ok {
			return stats, nil
		}
	}

	counts, err := s.submissions.CountByStatus(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	stats := &DashboardStats{
		Pending:    counts[domain.SubmissionStatusPending],
		Processing: counts[domain.SubmissionStatusProcessing],
		Approved:   counts[domain.SubmissionStatusApproved],
		Rejected:   counts[domain.SubmissionStatusRejected],
	}
	stats.Total = stats.Pending + stats.Processing + stats.Approved + stats.Rejected

	if s.statsCache != nil {
		s.statsCache.Set(ctx, stats)
	}
	return stats, nil
}

func (s *SubmissionService) getSubmission(ctx context.Context, id string) (*domain.Submission, error) {
	submission, err := s.submissions.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, apperrors.NewNotFound("submission", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return submission, nil
}

func (s *SubmissionService) listHistory(ctx context.Context, submissionID string) ([]domain.StatusChange, error) {
	if s.history == nil {
		return []domain.StatusChange{}, nil
	}
	history, err := s.history.ListBySubmission(ctx, submissionID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return history, nil
}

func (s *SubmissionService) invalidateStats(ctx context.Context) {
	if s.statsCache != nil {
		s.statsCache.Invalidate(ctx)
	}
}

func (s *SubmissionService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
