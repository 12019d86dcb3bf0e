package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/comitanigiacomo/eco-diary/internal/core/domain"
)

var (
	_ domain.StreakStore = (*InMemoryStreakStore)(nil)
	_ domain.StreakStore = (*RedisStreakStore)(nil)
)

const streakKey = "streak:current"

type InMemoryStreakStore struct {
	streak domain.Streak
	mu     sync.RWMutex
}

func NewInMemoryStreakStore() *InMemoryStreakStore {
	return &InMemoryStreakStore{}
}

func (s *InMemoryStreakStore) SaveStreak(ctx context.Context, streak domain.Streak) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.streak = streak
	return nil
}

// GetStreak returns the zero streak until the worker has run once.
func (s *InMemoryStreakStore) GetStreak(ctx context.Context) (domain.Streak, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.streak, nil
}

// RedisStreakStore shares the latest streak between API instances.
type RedisStreakStore struct {
	cache *redis.Client
}

func NewRedisStreakStore(cache *redis.Client) *RedisStreakStore {
	return &RedisStreakStore{cache: cache}
}

func (s *RedisStreakStore) SaveStreak(ctx context.Context, streak domain.Streak) error {
	data, err := json.Marshal(streak)
	if err != nil {
		return err
	}

	if err := s.cache.Set(ctx, streakKey, data, 0).Err(); err != nil {
		return fmt.Errorf("streak store: redis set failed: %w", err)
	}
	return nil
}

func (s *RedisStreakStore) GetStreak(ctx context.Context) (domain.Streak, error) {
	var streak domain.Streak

	val, err := s.cache.Get(ctx, streakKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return streak, nil
	}
	if err != nil {
		return streak, fmt.Errorf("streak store: redis get failed: %w", err)
	}

	if err := json.Unmarshal(val, &streak); err != nil {
		return domain.Streak{}, fmt.Errorf("streak store: corrupted value: %w", err)
	}
	return streak, nil
}
