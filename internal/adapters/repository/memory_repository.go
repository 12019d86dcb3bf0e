package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/comitanigiacomo/eco-diary/internal/core/domain"
)

var _ domain.DayEntryRepository = (*InMemoryEntryRepository)(nil)

// InMemoryEntryRepository keeps entries for the lifetime of the process.
// Entries are copied in and out so callers never share state with the store.
type InMemoryEntryRepository struct {
	store map[string]*domain.DayEntry

	mu sync.RWMutex
}

func NewInMemoryEntryRepository() *InMemoryEntryRepository {
	return &InMemoryEntryRepository{
		store: make(map[string]*domain.DayEntry),
	}
}

func (r *InMemoryEntryRepository) Save(ctx context.Context, entry *domain.DayEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.store[entry.Date]
	if ok && current.Version != entry.Version-1 {
		return domain.ErrEntryConflict
	}
	if !ok && entry.Version != 1 {
		return domain.ErrEntryConflict
	}

	r.store[entry.Date] = entry.Clone()
	return nil
}

func (r *InMemoryEntryRepository) GetByDate(ctx context.Context, date string) (*domain.DayEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.store[date]
	if !ok {
		return nil, domain.ErrEntryNotFound
	}
	return entry.Clone(), nil
}

func (r *InMemoryEntryRepository) ListRange(ctx context.Context, from, to string) ([]*domain.DayEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := []*domain.DayEntry{}
	for date, e := range r.store {
		if date >= from && date <= to {
			entries = append(entries, e.Clone())
		}
	}

	sortByDate(entries)
	return entries, nil
}

func (r *InMemoryEntryRepository) ListAll(ctx context.Context) ([]*domain.DayEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]*domain.DayEntry, 0, len(r.store))
	for _, e := range r.store {
		entries = append(entries, e.Clone())
	}

	sortByDate(entries)
	return entries, nil
}

func (r *InMemoryEntryRepository) Delete(ctx context.Context, date string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[date]; !ok {
		return domain.ErrEntryNotFound
	}

	delete(r.store, date)
	return nil
}

// Ping lets the health check treat both stores alike.
func (r *InMemoryEntryRepository) Ping(ctx context.Context) error {
	return nil
}

func sortByDate(entries []*domain.DayEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date < entries[j].Date
	})
}
