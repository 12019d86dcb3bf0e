package workers

import (
	"context"
	"log"
	"sort"
	"time"

	"github.com/comitanigiacomo/eco-diary/internal/core/domain"
)

type EntryLister interface {
	ListAll(ctx context.Context) ([]*domain.DayEntry, error)
}

type StreakJob struct {
	Reason string
}

type StreakWorker struct {
	entryRepo EntryLister
	store     domain.StreakStore
	jobs      chan StreakJob
	now       func() time.Time
	loc       *time.Location
}

func NewStreakWorker(eRepo EntryLister, store domain.StreakStore) *StreakWorker {
	return &StreakWorker{
		entryRepo: eRepo,
		store:     store,
		jobs:      make(chan StreakJob, 100),
		now:       time.Now,
		loc:       time.Local,
	}
}

// WithLocation sets the zone that decides which calendar day is "today".
func (w *StreakWorker) WithLocation(loc *time.Location) *StreakWorker {
	if loc != nil {
		w.loc = loc
	}
	return w
}

func (w *StreakWorker) Start(ctx context.Context) {
	go func() {
		log.Println("Streak Worker started in background...")
		for {
			select {
			case job := <-w.jobs:
				w.processJob(ctx, job)
			case <-ctx.Done():
				log.Println("Streak Worker shutting down...")
				return
			}
		}
	}()
}

// Enqueue never blocks; when the queue is full the job is dropped, the next
// write will schedule another recomputation anyway.
func (w *StreakWorker) Enqueue(reason string) {
	select {
	case w.jobs <- StreakJob{Reason: reason}:
	default:
		log.Printf("Streak Worker queue full! Dropping job (%s)", reason)
	}
}

// Refresh recomputes the streak synchronously.
func (w *StreakWorker) Refresh(ctx context.Context) (domain.Streak, error) {
	entries, err := w.entryRepo.ListAll(ctx)
	if err != nil {
		return domain.Streak{}, err
	}

	now := w.now().In(w.loc)
	current, longest := calculateStreaks(entries, now)

	streak := domain.Streak{
		Current:   current,
		Longest:   longest,
		UpdatedAt: now.UTC(),
	}

	if err := w.store.SaveStreak(ctx, streak); err != nil {
		return domain.Streak{}, err
	}
	return streak, nil
}

func (w *StreakWorker) processJob(ctx context.Context, job StreakJob) {
	streak, err := w.Refresh(ctx)
	if err != nil {
		log.Printf("Worker Error refreshing streak (%s): %v", job.Reason, err)
		return
	}
	log.Printf("Streak updated (%s): Current=%d, Longest=%d", job.Reason, streak.Current, streak.Longest)
}

// calculateStreaks works on calendar days, so only filled entries with a
// valid date key take part.
func calculateStreaks(entries []*domain.DayEntry, now time.Time) (int, int) {
	uniqueDays := make(map[string]bool)
	var sortedDates []time.Time

	for _, e := range entries {
		if !e.IsFilled() || uniqueDays[e.Date] {
			continue
		}
		t, err := time.Parse(domain.DateLayout, e.Date)
		if err != nil {
			continue
		}
		uniqueDays[e.Date] = true
		sortedDates = append(sortedDates, t)
	}

	if len(sortedDates) == 0 {
		return 0, 0
	}

	sort.Slice(sortedDates, func(i, j int) bool {
		return sortedDates[i].After(sortedDates[j])
	})

	today, _ := time.Parse(domain.DateLayout, domain.DateKey(now))

	// Days planned ahead do not break today's streak.
	start := 0
	for start < len(sortedDates) && sortedDates[start].After(today) {
		start++
	}

	currentStreak := 0
	if start < len(sortedDates) && !sortedDates[start].Before(today.AddDate(0, 0, -1)) {
		currentStreak = 1
		for i := start; i < len(sortedDates)-1; i++ {
			if !consecutive(sortedDates[i+1], sortedDates[i]) {
				break
			}
			currentStreak++
		}
	}

	longestStreak := 0
	tempStreak := 1

	for i := 0; i < len(sortedDates)-1; i++ {
		if consecutive(sortedDates[i+1], sortedDates[i]) {
			tempStreak++
		} else {
			if tempStreak > longestStreak {
				longestStreak = tempStreak
			}
			tempStreak = 1
		}
	}
	if tempStreak > longestStreak {
		longestStreak = tempStreak
	}

	return currentStreak, longestStreak
}

func consecutive(earlier, later time.Time) bool {
	return earlier.AddDate(0, 0, 1).Equal(later)
}
