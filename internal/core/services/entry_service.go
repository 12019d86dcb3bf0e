package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/comitanigiacomo/eco-diary/internal/core/domain"
	"github.com/comitanigiacomo/eco-diary/internal/core/workers"
)

type EntryService struct {
	repo    domain.DayEntryRepository
	catalog domain.Catalog
	worker  *workers.StreakWorker
}

func NewEntryService(repo domain.DayEntryRepository, worker *workers.StreakWorker) *EntryService {
	return &EntryService{
		repo:    repo,
		catalog: domain.DefaultCatalog(),
		worker:  worker,
	}
}

type SaveEntryInput struct {
	Date          string
	Goal          string
	Notes         string
	CheckedHabits []string
	Version       int
}

// Save creates the entry for a date or overwrites the existing one.
func (s *EntryService) Save(ctx context.Context, input SaveEntryInput) (*domain.DayEntry, error) {
	if err := domain.ValidateDateKey(input.Date); err != nil {
		return nil, err
	}

	checked := domain.NormalizeHabits(input.CheckedHabits)
	if err := s.catalog.Validate(checked); err != nil {
		return nil, err
	}

	entry, err := s.loadForWrite(ctx, input.Date, input.Version)
	if err != nil {
		return nil, err
	}

	entry.Fill(input.Goal, input.Notes, checked)

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, entry); err != nil {
		return nil, err
	}

	s.enqueue("save " + entry.Date)

	return entry, nil
}

// ToggleHabit flips one habit for a date, creating a blank entry first if the
// date has none.
func (s *EntryService) ToggleHabit(ctx context.Context, date, habitID string) (*domain.DayEntry, error) {
	if err := domain.ValidateDateKey(date); err != nil {
		return nil, err
	}
	if !s.catalog.Contains(habitID) {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownHabit, habitID)
	}

	entry, err := s.loadForWrite(ctx, date, 0)
	if err != nil {
		return nil, err
	}

	entry.ToggleHabit(habitID)

	if err := s.repo.Save(ctx, entry); err != nil {
		return nil, err
	}

	s.enqueue("toggle " + date)

	return entry, nil
}

func (s *EntryService) Get(ctx context.Context, date string) (*domain.DayEntry, error) {
	if err := domain.ValidateDateKey(date); err != nil {
		return nil, err
	}
	return s.repo.GetByDate(ctx, date)
}

func (s *EntryService) List(ctx context.Context, from, to string) ([]*domain.DayEntry, error) {
	if err := domain.ValidateDateKey(from); err != nil {
		return nil, err
	}
	if err := domain.ValidateDateKey(to); err != nil {
		return nil, err
	}
	if from > to {
		return nil, fmt.Errorf("%w: %s is after %s", domain.ErrInvalidRange, from, to)
	}

	return s.repo.ListRange(ctx, from, to)
}

func (s *EntryService) Delete(ctx context.Context, date string) error {
	if err := domain.ValidateDateKey(date); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, date); err != nil {
		return err
	}

	s.enqueue("delete " + date)

	return nil
}

// loadForWrite returns a copy of the stored entry with its version bumped, or
// a fresh entry when the date has none. A positive clientVersion must match
// the stored one.
func (s *EntryService) loadForWrite(ctx context.Context, date string, clientVersion int) (*domain.DayEntry, error) {
	existing, err := s.repo.GetByDate(ctx, date)
	if errors.Is(err, domain.ErrEntryNotFound) {
		if clientVersion > 1 {
			return nil, fmt.Errorf("%w: client v%d but entry does not exist", domain.ErrEntryConflict, clientVersion)
		}
		return domain.NewDayEntry(date), nil
	}
	if err != nil {
		return nil, err
	}

	if clientVersion > 0 && existing.Version != clientVersion {
		return nil, fmt.Errorf("%w: client v%d vs server v%d", domain.ErrEntryConflict, clientVersion, existing.Version)
	}

	entry := existing.Clone()
	entry.Version++
	entry.UpdatedAt = time.Now().UTC()

	return entry, nil
}

func (s *EntryService) enqueue(reason string) {
	if s.worker != nil {
		s.worker.Enqueue(reason)
	}
}
