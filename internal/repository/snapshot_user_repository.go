package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/KoshiiX/Layanan-1/internal/domain"
	"github.com/KoshiiX/Layanan-1/internal/store"
)

// snapshotUserRepository keeps the roster in memory and mirrors every
// mutation into the snapshot store, last-writer-wins. On construction a
// prior snapshot is adopted; otherwise the seed roster is persisted.
type snapshotUserRepository struct {
	mu    sync.RWMutex
	store store.Store
	users []domain.User
}

// NewSnapshotUserRepository loads or seeds the roster snapshot.
func NewSnapshotUserRepository(ctx context.Context, s store.Store, seedUsers []domain.User) (UserRepository, error) {
	repo := &snapshotUserRepository{store: s}
	var users []domain.User
	err := store.Load(ctx, s, store.KeyUsers, &users)
	switch {
	case err == nil:
		repo.users = users
	case err == store.ErrNotFound:
		repo.users = append([]domain.User{}, seedUsers...)
		if err := repo.persist(ctx); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}
	return repo, nil
}

func (r *snapshotUserRepository) persist(ctx context.Context) error {
	return store.Save(ctx, r.store, store.KeyUsers, r.users)
}

func (r *snapshotUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users = append(r.users, *user)
	return r.persist(ctx)
}

func (r *snapshotUserRepository) Update(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].ID == user.ID {
			user.UpdatedAt = time.Now()
			r.users[i] = *user
			return r.persist(ctx)
		}
	}
	return ErrNotFound
}

func (r *snapshotUserRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.users {
		if r.users[i].ID == id {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (r *snapshotUserRepository) GetByIdentifier(_ context.Context, identifier string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.users {
		if r.users[i].NIK == identifier || r.users[i].Email == identifier {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (r *snapshotUserRepository) ExistsByNIKOrEmail(_ context.Context, nik, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.users {
		if r.users[i].NIK == nik || (email != "" && r.users[i].Email == email) {
			return true, nil
		}
	}
	return false, nil
}

func (r *snapshotUserRepository) ListByRole(_ context.Context, role domain.Role) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.User
	for i := range r.users {
		if r.users[i].Role == role {
			result = append(result, r.users[i])
		}
	}
	return result, nil
}
