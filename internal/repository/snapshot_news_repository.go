package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/KoshiiX/Layanan-1/internal/domain"
	"github.com/KoshiiX/Layanan-1/internal/store"
)

// snapshotNewsRepository preserves insertion order: Create prepends so
// the feed lists newest first, and Delete keeps the relative order of
// the remaining items.
type snapshotNewsRepository struct {
	mu    sync.RWMutex
	store store.Store
	items []domain.NewsItem
}

// NewSnapshotNewsRepository loads or seeds the news snapshot.
func NewSnapshotNewsRepository(ctx context.Context, s store.Store, seedNews []domain.NewsItem) (NewsRepository, error) {
	repo := &snapshotNewsRepository{store: s}
	var items []domain.NewsItem
	err := store.Load(ctx, s, store.KeyNews, &items)
	switch {
	case err == nil:
		repo.items = items
	case err == store.ErrNotFound:
		repo.items = append([]domain.NewsItem{}, seedNews...)
		if err := repo.persist(ctx); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}
	return repo, nil
}

func (r *snapshotNewsRepository) persist(ctx context.Context) error {
	return store.Save(ctx, r.store, store.KeyNews, r.items)
}

func (r *snapshotNewsRepository) Create(ctx context.Context, item *domain.NewsItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now
	r.items = append([]domain.NewsItem{*item}, r.items...)
	return r.persist(ctx)
}

func (r *snapshotNewsRepository) Update(ctx context.Context, item *domain.NewsItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == item.ID {
			item.UpdatedAt = time.Now()
			r.items[i] = *item
			return r.persist(ctx)
		}
	}
	return ErrNotFound
}

func (r *snapshotNewsRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return r.persist(ctx)
		}
	}
	return ErrNotFound
}

func (r *snapshotNewsRepository) GetByID(_ context.Context, id string) (*domain.NewsItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.items {
		if r.items[i].ID == id {
			item := r.items[i]
			return &item, nil
		}
	}
	return nil, ErrNotFound
}

func (r *snapshotNewsRepository) List(_ context.Context) ([]domain.NewsItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]domain.NewsItem, len(r.items))
	copy(result, r.items)
	return result, nil
}
