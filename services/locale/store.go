package locale

import (
	"context"
	"fmt"
	"sync"

	"servigo/utils"

	"github.com/go-redis/redis/v8"
)

// TagStore persists the active language tag across sessions.
type TagStore interface {
	// Load returns the persisted tag, or "" when none has been saved yet.
	Load(ctx context.Context) (string, error)
	// Save persists the tag.
	Save(ctx context.Context, tag string) error
}

// RedisTagStore implements TagStore on the locale Redis client.
type RedisTagStore struct {
	Client *redis.Client
}

// NewRedisTagStore creates a TagStore backed by the given Redis client.
func NewRedisTagStore(client *redis.Client) TagStore {
	return &RedisTagStore{Client: client}
}

func (s *RedisTagStore) Load(ctx context.Context) (string, error) {
	tag, err := s.Client.Get(ctx, utils.LocaleKey).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("locale: failed to load language tag: %w", err)
	}
	return tag, nil
}

func (s *RedisTagStore) Save(ctx context.Context, tag string) error {
	if err := s.Client.Set(ctx, utils.LocaleKey, tag, 0).Err(); err != nil {
		return fmt.Errorf("locale: failed to save language tag: %w", err)
	}
	return nil
}

// MemoryTagStore is an in-memory TagStore used in tests.
type MemoryTagStore struct {
	mu  sync.Mutex
	tag string
}

func (s *MemoryTagStore) Load(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tag, nil
}

func (s *MemoryTagStore) Save(ctx context.Context, tag string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tag = tag
	return nil
}
