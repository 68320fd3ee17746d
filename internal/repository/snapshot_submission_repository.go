package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/KoshiiX/Layanan-1/internal/domain"
	"github.com/KoshiiX/Layanan-1/internal/store"
)

type snapshotSubmissionRepository struct {
	mu          sync.RWMutex
	store       store.Store
	submissions []domain.Submission
}

// NewSnapshotSubmissionRepository loads or seeds the submissions snapshot.
func NewSnapshotSubmissionRepository(ctx context.Context, s store.Store, seedSubmissions []domain.Submission) (SubmissionRepository, error) {
	repo := &snapshotSubmissionRepository{store: s}
	var submissions []domain.Submission
	err := store.Load(ctx, s, store.KeySubmissions, &submissions)
	switch {
	case err == nil:
		repo.submissions = submissions
	case err == store.ErrNotFound:
		repo.submissions = append([]domain.Submission{}, seedSubmissions...)
		if err := repo.persist(ctx); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}
	return repo, nil
}

func (r *snapshotSubmissionRepository) persist(ctx context.Context) error {
	return store.Save(ctx, r.store, store.KeySubmissions, r.submissions)
}

func (r *snapshotSubmissionRepository) Create(ctx context.Context, submission *domain.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if submission.ID == "" {
		submission.ID = uuid.NewString()
	}
	now := time.Now()
	submission.CreatedAt = now
	submission.UpdatedAt = now
	r.submissions = append(r.submissions, *submission)
	return r.persist(ctx)
}

func (r *snapshotSubmissionRepository) Update(ctx context.Context, submission *domain.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.submissions {
		if r.submissions[i].ID == submission.ID {
			submission.UpdatedAt = time.Now()
			r.submissions[i] = *submission
			return r.persist(ctx)
		}
	}
	return ErrNotFound
}

func (r *snapshotSubmissionRepository) GetByID(_ context.Context, id string) (*domain.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.submissions {
		if r.submissions[i].ID == id {
			submission := r.submissions[i]
			return &submission, nil
		}
	}
	return nil, ErrNotFound
}

func (r *snapshotSubmissionRepository) ListWithFilter(_ context.Context, filter SubmissionFilter) ([]domain.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []domain.Submission
	for i := range r.submissions {
		s := r.submissions[i]
		if filter.UserID != nil && s.UserID != *filter.UserID {
			continue
		}
		if len(filter.Statuses) > 0 && !statusIn(s.Status, filter.Statuses) {
			continue
		}
		matched = append(matched, s)
	}

	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	if offset >= len(matched) {
		return nil, nil
	}
	matched = matched[offset:]

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *snapshotSubmissionRepository) CountByStatus(_ context.Context) (map[domain.SubmissionStatus]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	counts := make(map[domain.SubmissionStatus]int)
	for i := range r.submissions {
		counts[r.submissions[i].Status]++
	}
	return counts, nil
}

func statusIn(status domain.SubmissionStatus, set []domain.SubmissionStatus) bool {
	for _, candidate := range set {
		if candidate == status {
			return true
		}
	}
	return false
}
