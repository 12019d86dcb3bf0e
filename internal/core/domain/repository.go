package domain

import (
	"context"
	"errors"
)

var (
	ErrEntryNotFound = errors.New("day entry not found")
	ErrEntryConflict = errors.New("day entry version conflict")
)

type DayEntryRepository interface {
	// Save inserts the entry or overwrites the one stored for the same date.
	// Implementations compare entry.Version-1 with the stored version when the
	// entry already exists and return ErrEntryConflict on mismatch.
	Save(ctx context.Context, entry *DayEntry) error

	// GetByDate retrieves the entry for a YYYY-MM-DD key.
	GetByDate(ctx context.Context, date string) (*DayEntry, error)

	// ListRange returns entries with from <= date <= to, ordered by date.
	ListRange(ctx context.Context, from, to string) ([]*DayEntry, error)

	// ListAll returns every stored entry ordered by date.
	ListAll(ctx context.Context) ([]*DayEntry, error)

	// Delete removes the entry for a date.
	Delete(ctx context.Context, date string) error
}

type StreakStore interface {
	SaveStreak(ctx context.Context, streak Streak) error
	GetStreak(ctx context.Context) (Streak, error)
}
