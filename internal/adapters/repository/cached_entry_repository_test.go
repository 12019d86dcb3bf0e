package repository

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/eco-diary/internal/core/domain"
)

func setupTestRedis(t *testing.T) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_HOST", "localhost") + ":" + getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		t.Skipf("Skipping Redis integration tests: %v", err)
	}

	require.NoError(t, rdb.FlushDB(context.Background()).Err())
	return rdb
}

func TestCachedEntryRepository_Integration(t *testing.T) {
	rdb := setupTestRedis(t)
	defer rdb.Close()

	ctx := context.Background()
	base := NewInMemoryEntryRepository()
	repo := NewCachedEntryRepository(base, rdb)

	require.NoError(t, repo.Save(ctx, domain.NewDayEntry("2024-03-01")))

	t.Run("Miss Populates Cache", func(t *testing.T) {
		entries, err := repo.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 1)

		exists, err := rdb.Exists(ctx, allEntriesKey).Result()
		require.NoError(t, err)
		assert.Equal(t, int64(1), exists)

		ttl, err := rdb.TTL(ctx, allEntriesKey).Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, 29*time.Minute)
	})

	t.Run("Hit Serves Cached List", func(t *testing.T) {
		// Written behind the decorator, so only a cache hit hides it.
		require.NoError(t, base.Save(ctx, domain.NewDayEntry("2024-03-02")))

		entries, err := repo.ListAll(ctx)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("Write Invalidates", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, domain.NewDayEntry("2024-03-03")))

		entries, err := repo.ListAll(ctx)
		require.NoError(t, err)
		assert.Len(t, entries, 3)
	})

	t.Run("Delete Invalidates", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "2024-03-01"))

		entries, err := repo.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "2024-03-02", entries[0].Date)
	})

	t.Run("Corrupted Value Falls Through", func(t *testing.T) {
		require.NoError(t, rdb.Set(ctx, allEntriesKey, "{not json", time.Minute).Err())

		entries, err := repo.ListAll(ctx)
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})
}

func TestCachedEntryRepository_RedisDown(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond, MaxRetries: -1})
	defer rdb.Close()

	ctx := context.Background()
	repo := NewCachedEntryRepository(NewInMemoryEntryRepository(), rdb)

	require.NoError(t, repo.Save(ctx, domain.NewDayEntry("2024-03-01")))

	entries, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestRedisStreakStore_Integration(t *testing.T) {
	rdb := setupTestRedis(t)
	defer rdb.Close()

	ctx := context.Background()
	store := NewRedisStreakStore(rdb)

	empty, err := store.GetStreak(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Streak{}, empty)

	saved := domain.Streak{Current: 4, Longest: 9, UpdatedAt: time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)}
	require.NoError(t, store.SaveStreak(ctx, saved))

	got, err := store.GetStreak(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Current)
	assert.Equal(t, 9, got.Longest)
	assert.True(t, saved.UpdatedAt.Equal(got.UpdatedAt))
}
