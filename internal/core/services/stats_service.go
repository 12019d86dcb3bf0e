package services

import (
	"context"
	"log"

	"github.com/comitanigiacomo/eco-diary/internal/core/domain"
)

type StatsService struct {
	entryRepo domain.DayEntryRepository
	streaks   domain.StreakStore
	catalog   domain.Catalog
}

func NewStatsService(entryRepo domain.DayEntryRepository, streaks domain.StreakStore) *StatsService {
	return &StatsService{
		entryRepo: entryRepo,
		streaks:   streaks,
		catalog:   domain.DefaultCatalog(),
	}
}

func (s *StatsService) Summary(ctx context.Context) (*domain.HabitSummary, error) {
	entries, err := s.entryRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	summary := domain.ComputeHabitStats(domain.NewEntrySet(entries), s.catalog)

	if s.streaks != nil {
		streak, err := s.streaks.GetStreak(ctx)
		if err != nil {
			log.Printf("[STATS] Streak unavailable: %v", err)
		} else {
			summary.Streak = &streak
		}
	}

	return &summary, nil
}

func (s *StatsService) Catalog() domain.Catalog {
	return append(domain.Catalog(nil), s.catalog...)
}
