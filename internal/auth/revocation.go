package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RevocationList tracks session tokens invalidated before their natural
// expiry (logout). Entries only need to live as long as the token would.
type RevocationList interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

const revocationKeyPrefix = "session:revoked:"

// NewRevocationListFor picks the backing for the revocation list: the
// redis-backed implementation when the server answers, otherwise the
// in-process list so authenticated routes keep working in
// zero-infrastructure deployments. With the in-process list, logout
// revocations do not survive a restart.
func NewRevocationListFor(ctx context.Context, client *redis.Client, logger *zap.Logger) RevocationList {
	if client != nil {
		if err := client.Ping(ctx).Err(); err == nil {
			return NewRedisRevocationList(client)
		}
		logger.Warn("redis unreachable; keeping session revocations in process memory")
	}
	return NewMemoryRevocationList()
}

type redisRevocationList struct {
	client *redis.Client
}

// NewRedisRevocationList stores revocations in Redis with per-entry TTL.
func NewRedisRevocationList(client *redis.Client) RevocationList {
	return &redisRevocationList{client: client}
}

func (r *redisRevocationList) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := r.client.Set(ctx, revocationKeyPrefix+tokenID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke session %s: %w", tokenID, err)
	}
	return nil
}

func (r *redisRevocationList) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	err := r.client.Get(ctx, revocationKeyPrefix+tokenID).Err()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check session %s: %w", tokenID, err)
	}
	return true, nil
}

type memoryRevocationList struct {
	mu      sync.Mutex
	expires map[string]time.Time
}

// NewMemoryRevocationList keeps revocations in process memory. Used in
// tests and when Redis is unavailable.
func NewMemoryRevocationList() RevocationList {
	return &memoryRevocationList{expires: make(map[string]time.Time)}
}

func (m *memoryRevocationList) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.expires[tokenID] = time.Now().Add(ttl)
	return nil
}

func (m *memoryRevocationList) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	deadline, ok := m.expires[tokenID]
	if !ok {
		return false, nil
	}
	if time.Now().After(deadline) {
		delete(m.expires, tokenID)
		return false, nil
	}
	return true, nil
}
