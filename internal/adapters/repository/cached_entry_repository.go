package repository

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/comitanigiacomo/eco-diary/internal/core/domain"
)

var _ domain.DayEntryRepository = (*CachedEntryRepository)(nil)

const (
	allEntriesKey = "entries:all"
	entriesTTL    = 30 * time.Minute
)

// CachedEntryRepository keeps the full entry list in redis. Statistics and
// the streak worker read it on every request; writes drop the key.
type CachedEntryRepository struct {
	next  domain.DayEntryRepository
	cache *redis.Client
}

func NewCachedEntryRepository(next domain.DayEntryRepository, cache *redis.Client) *CachedEntryRepository {
	return &CachedEntryRepository{
		next:  next,
		cache: cache,
	}
}

func (r *CachedEntryRepository) invalidate(ctx context.Context, date string) {
	if err := r.cache.Del(ctx, allEntriesKey).Err(); err != nil {
		log.Printf("[CACHE] Failed to invalidate after write on %s: %v", date, err)
	}
}

func (r *CachedEntryRepository) ListAll(ctx context.Context) ([]*domain.DayEntry, error) {
	val, err := r.cache.Get(ctx, allEntriesKey).Result()
	if err == nil {
		var entries []*domain.DayEntry
		if err := json.Unmarshal([]byte(val), &entries); err == nil {
			return entries, nil
		}

		log.Printf("[CACHE] Corrupted entry list, cleaning up key")
		r.cache.Del(ctx, allEntriesKey)
	} else if err != redis.Nil {
		log.Printf("[CACHE] Redis read error: %v", err)
	}

	entries, err := r.next.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(entries); err == nil {
		if setErr := r.cache.Set(ctx, allEntriesKey, data, entriesTTL).Err(); setErr != nil {
			log.Printf("[CACHE] Redis set error: %v", setErr)
		}
	}

	return entries, nil
}

func (r *CachedEntryRepository) GetByDate(ctx context.Context, date string) (*domain.DayEntry, error) {
	return r.next.GetByDate(ctx, date)
}

func (r *CachedEntryRepository) ListRange(ctx context.Context, from, to string) ([]*domain.DayEntry, error) {
	return r.next.ListRange(ctx, from, to)
}

func (r *CachedEntryRepository) Save(ctx context.Context, entry *domain.DayEntry) error {
	if err := r.next.Save(ctx, entry); err != nil {
		return err
	}
	r.invalidate(ctx, entry.Date)
	return nil
}

func (r *CachedEntryRepository) Delete(ctx context.Context, date string) error {
	if err := r.next.Delete(ctx, date); err != nil {
		return err
	}
	r.invalidate(ctx, date)
	return nil
}
