package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// redis key pattern: revoked:{uid} - unix seconds before which sessions are invalid
const keyRevokedAfter = "revoked:%s"

// MemoryRevocationStore implements RevocationStore for a single process
type MemoryRevocationStore struct {
	mu    sync.RWMutex
	after map[string]time.Time
}

func NewMemoryRevocationStore() *MemoryRevocationStore {
	return &MemoryRevocationStore{after: make(map[string]time.Time)}
}

func (s *MemoryRevocationStore) RevokeAll(_ context.Context, uid string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.after[uid] = at
	return nil
}

func (s *MemoryRevocationStore) ValidAfter(_ context.Context, uid string) (time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.after[uid], nil
}

// RedisRevocationStore shares revocations between server instances
type RedisRevocationStore struct {
	client *redis.Client

	// entries outlive the longest session they can affect
	ttl time.Duration
}

func NewRedisRevocationStore(client *redis.Client, ttl time.Duration) *RedisRevocationStore {
	return &RedisRevocationStore{client: client, ttl: ttl}
}

func (s *RedisRevocationStore) RevokeAll(ctx context.Context, uid string, at time.Time) error {
	key := fmt.Sprintf(keyRevokedAfter, uid)

	if err := s.client.Set(ctx, key, at.Unix(), s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store revocation in redis: %w", err)
	}

	return nil
}

func (s *RedisRevocationStore) ValidAfter(ctx context.Context, uid string) (time.Time, error) {
	key := fmt.Sprintf(keyRevokedAfter, uid)

	raw, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return time.Time{}, nil
	}

	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read revocation from redis: %w", err)
	}

	secs, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("corrupt revocation entry for %s: %w", uid, err)
	}

	return time.Unix(secs, 0), nil
}
