package auth

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationSet records digests of tokens invalidated before natural expiry.
// Implementations must be safe for concurrent use.
type RevocationSet interface {
	Add(ctx context.Context, digest string, ttl time.Duration) error
	Contains(ctx context.Context, digest string) (bool, error)
}

const revocationKeyPrefix = "revoked_token:"

// RedisRevocationSet backs the set with redis so revocations survive restarts
// and are visible to every server instance. Entries carry a TTL equal to the
// token's remaining lifetime, after which they are redundant anyway.
type RedisRevocationSet struct {
	client *redis.Client
}

// NewRedisRevocationSet wraps a connected client.
func NewRedisRevocationSet(client *redis.Client) *RedisRevocationSet {
	return &RedisRevocationSet{client: client}
}

func (r *RedisRevocationSet) Add(ctx context.Context, digest string, ttl time.Duration) error {
	return r.client.Set(ctx, revocationKeyPrefix+digest, 1, ttl).Err()
}

func (r *RedisRevocationSet) Contains(ctx context.Context, digest string) (bool, error) {
	n, err := r.client.Exists(ctx, revocationKeyPrefix+digest).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// MemoryRevocationSet keeps revocations in process memory. Used when redis is
// not configured and in tests; entries vanish on restart.
type MemoryRevocationSet struct {
	mu      sync.RWMutex
	entries map[string]time.Time
}

// NewMemoryRevocationSet builds an empty set.
func NewMemoryRevocationSet() *MemoryRevocationSet {
	return &MemoryRevocationSet{entries: make(map[string]time.Time)}
}

func (m *MemoryRevocationSet) Add(_ context.Context, digest string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[digest] = time.Now().Add(ttl)
	return nil
}

func (m *MemoryRevocationSet) Contains(_ context.Context, digest string) (bool, error) {
	m.mu.RLock()
	deadline, ok := m.entries[digest]
	m.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if time.Now().After(deadline) {
		m.mu.Lock()
		delete(m.entries, digest)
		m.mu.Unlock()
		return false, nil
	}
	return true, nil
}
