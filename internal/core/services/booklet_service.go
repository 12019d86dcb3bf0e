package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/comitanigiacomo/eco-diary/internal/core/domain"
)

const (
	bookletTitle    = "Eco Diary"
	bookletSubtitle = "30 days to a sustainable lifestyle"
)

var bookletFeatures = []string{
	"Set green goals",
	"Track eco-friendly habits",
	"Learn something new every day",
}

// Renderer turns diary pages into a printable document.
type Renderer interface {
	RenderBooklet(w io.Writer, booklet *domain.Booklet, catalog domain.Catalog) error
	RenderDay(w io.Writer, page *domain.BookletPage, catalog domain.Catalog) error
}

type BookletService struct {
	repo     domain.DayEntryRepository
	content  *ContentService
	renderer Renderer
	catalog  domain.Catalog
	now      func() time.Time
}

func NewBookletService(repo domain.DayEntryRepository, content *ContentService, renderer Renderer) *BookletService {
	return &BookletService{
		repo:     repo,
		content:  content,
		renderer: renderer,
		catalog:  domain.DefaultCatalog(),
		now:      time.Now,
	}
}

// Booklet builds a cover plus one page per day starting at start. Stored
// entries are printed on their pages; other days are left blank to fill in
// by hand.
func (s *BookletService) Booklet(ctx context.Context, start time.Time, days int) (*domain.Booklet, error) {
	if days == 0 {
		days = domain.DefaultBookletDays
	}
	if days < 1 || days > domain.MaxBookletDays {
		return nil, domain.ErrInvalidBookletLength
	}

	year, month, day := start.Date()
	first := time.Date(year, month, day, 0, 0, 0, 0, start.Location())
	last := first.AddDate(0, 0, days-1)

	entries, err := s.repo.ListRange(ctx, domain.DateKey(first), domain.DateKey(last))
	if err != nil {
		return nil, fmt.Errorf("booklet: failed to load entries: %w", err)
	}
	set := domain.NewEntrySet(entries)

	booklet := &domain.Booklet{
		Title:    bookletTitle,
		Subtitle: bookletSubtitle,
		Features: append([]string(nil), bookletFeatures...),
		Year:     s.now().Year(),
		Pages:    make([]domain.BookletPage, 0, days),
	}

	for i := 0; i < days; i++ {
		date := first.AddDate(0, 0, i)
		key := domain.DateKey(date)
		content := s.content.ForDay(i)

		booklet.Pages = append(booklet.Pages, domain.BookletPage{
			DayNumber:   i + 1,
			Date:        key,
			DisplayDate: domain.FormatDisplayDate(date),
			Quote:       content.Quote,
			Fact:        content.Fact,
			Tip:         content.Tip,
			Entry:       set[key],
		})
	}

	return booklet, nil
}

// Day builds the printable page for a single date with the session content.
func (s *BookletService) Day(ctx context.Context, date string) (*domain.BookletPage, error) {
	d, err := domain.ParseDateKey(date, time.UTC)
	if err != nil {
		return nil, err
	}

	entry, err := s.repo.GetByDate(ctx, date)
	if err != nil && !errors.Is(err, domain.ErrEntryNotFound) {
		return nil, fmt.Errorf("day page: failed to load entry: %w", err)
	}

	content := s.content.Today()

	return &domain.BookletPage{
		DayNumber:   d.Day(),
		Date:        date,
		DisplayDate: domain.FormatDisplayDate(d),
		Quote:       content.Quote,
		Fact:        content.Fact,
		Tip:         content.Tip,
		Entry:       entry,
	}, nil
}

func (s *BookletService) WriteBooklet(ctx context.Context, w io.Writer, start time.Time, days int) error {
	booklet, err := s.Booklet(ctx, start, days)
	if err != nil {
		return err
	}
	return s.renderer.RenderBooklet(w, booklet, s.catalog)
}

func (s *BookletService) WriteDay(ctx context.Context, w io.Writer, date string) error {
	page, err := s.Day(ctx, date)
	if err != nil {
		return err
	}
	return s.renderer.RenderDay(w, page, s.catalog)
}
