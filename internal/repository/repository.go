// Package repository defines persistence access for the portal's
// collections. Two families of implementations exist: Postgres (primary)
// and snapshot-backed (a seeded fallback for DSN-less deployments).
package repository

import (
	"context"
	"errors"

	"github.com/KoshiiX/Layanan-1/internal/domain"
)

// ErrNotFound is returned when a record does not exist, regardless of
// the backing engine.
var ErrNotFound = errors.New("record not found")

// UserRepository defines persistence access for the roster.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// GetByIdentifier matches NIK or email exactly.
	GetByIdentifier(ctx context.Context, identifier string) (*domain.User, error)
	// ExistsByNIKOrEmail reports whether either identifying field is taken.
	ExistsByNIKOrEmail(ctx context.Context, nik, email string) (bool, error)
	ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
}

// SubmissionFilter captures listing parameters.
type SubmissionFilter struct {
	UserID   *string
	Statuses []domain.SubmissionStatus
	Limit    int
	Offset   int
}

// SubmissionRepository encapsulates submission persistence.
type SubmissionRepository interface {
	Create(ctx context.Context, submission *domain.Submission) error
	Update(ctx context.Context, submission *domain.Submission) error
	GetByID(ctx context.Context, id string) (*domain.Submission, error)
	ListWithFilter(ctx context.Context, filter SubmissionFilter) ([]domain.Submission, error)
	CountByStatus(ctx context.Context) (map[domain.SubmissionStatus]int, error)
}

// NewsRepository encapsulates news persistence. Listing returns newest
// first; deletes preserve the relative order of remaining items.
type NewsRepository interface {
	Create(ctx context.Context, item *domain.NewsItem) error
	Update(ctx context.Context, item *domain.NewsItem) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.NewsItem, error)
	List(ctx context.Context) ([]domain.NewsItem, error)
}

// StatusChangeRepository records submission lifecycle transitions.
type StatusChangeRepository interface {
	Create(ctx context.Context, change *domain.StatusChange) error
	ListBySubmission(ctx context.Context, submissionID string) ([]domain.StatusChange, error)
}
