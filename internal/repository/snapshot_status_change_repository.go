package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/KoshiiX/Layanan-1/internal/domain"
	"github.com/KoshiiX/Layanan-1/internal/store"
)

type snapshotStatusChangeRepository struct {
	mu      sync.RWMutex
	store   store.Store
	changes []domain.StatusChange
}

// NewSnapshotStatusChangeRepository loads the audit log snapshot. There
// is no seed; the log starts empty.
func NewSnapshotStatusChangeRepository(ctx context.Context, s store.Store) (StatusChangeRepository, error) {
	repo := &snapshotStatusChangeRepository{store: s}
	var changes []domain.StatusChange
	err := store.Load(ctx, s, store.KeyStatusChanges, &changes)
	switch {
	case err == nil:
		repo.changes = changes
	case err == store.ErrNotFound:
	default:
		return nil, err
	}
	return repo, nil
}

func (r *snapshotStatusChangeRepository) Create(ctx context.Context, change *domain.StatusChange) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if change.ID == "" {
		change.ID = uuid.NewString()
	}
	change.CreatedAt = time.Now()
	r.changes = append(r.changes, *change)
	return store.Save(ctx, r.store, store.KeyStatusChanges, r.changes)
}

func (r *snapshotStatusChangeRepository) ListBySubmission(_ context.Context, submissionID string) ([]domain.StatusChange, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.StatusChange
	for i := range r.changes {
		if r.changes[i].SubmissionID == submissionID {
			result = append(result, r.changes[i])
		}
	}
	return result, nil
}
