package services

import (
	"context"
	"time"

	"github.com/comitanigiacomo/eco-diary/internal/core/domain"
)

type CalendarService struct {
	repo domain.DayEntryRepository
}

func NewCalendarService(repo domain.DayEntryRepository) *CalendarService {
	return &CalendarService{
		repo: repo,
	}
}

func (s *CalendarService) Month(ctx context.Context, reference time.Time, selected string) (*domain.MonthView, error) {
	year, month, _ := reference.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, reference.Location())
	last := first.AddDate(0, 1, -1)

	entries, err := s.repo.ListRange(ctx, domain.DateKey(first), domain.DateKey(last))
	if err != nil {
		return nil, err
	}

	cells := domain.BuildMonthGrid(reference, selected, domain.NewEntrySet(entries))

	filled := 0
	for _, c := range cells {
		if c.IsFilled {
			filled++
		}
	}

	return &domain.MonthView{
		Title:      domain.FormatMonthTitle(first),
		Month:      first.Format("2006-01"),
		Selected:   selected,
		Weekdays:   append([]string(nil), domain.Weekdays...),
		Cells:      cells,
		FilledDays: filled,
		EntryCount: len(entries),
	}, nil
}
