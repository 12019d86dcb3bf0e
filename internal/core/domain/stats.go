package domain

import (
	"fmt"
	"sort"
	"time"
)

const (
	EncouragementExcellent = "excellent"
	EncouragementSteady    = "steady"
	EncouragementNeedsMore = "needs_more"

	// MinDaysForEncouragement is how many entries the diary needs before it
	// starts commenting on progress.
	MinDaysForEncouragement = 7
)

type HabitStat struct {
	HabitID    string `json:"habit_id"`
	Label      string `json:"label"`
	Icon       string `json:"icon"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

type Encouragement struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

type HabitSummary struct {
	Stats             []HabitStat    `json:"habits"`
	TotalDays         int            `json:"total_days"`
	TotalHabitActions int            `json:"total_habit_actions"`
	AveragePerDay     int            `json:"average_per_day"`
	Encouragement     *Encouragement `json:"encouragement,omitempty"`
	Streak            *Streak        `json:"streak,omitempty"`
}

type Streak struct {
	Current   int       `json:"current"`
	Longest   int       `json:"longest"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ComputeHabitStats counts, for each catalog habit, the entries that checked
// it. Every entry counts as a day, filled or not.
func ComputeHabitStats(entries EntrySet, catalog Catalog) HabitSummary {
	totalDays := len(entries)

	stats := make([]HabitStat, 0, len(catalog))
	totalActions := 0

	for _, h := range catalog {
		count := 0
		for _, e := range entries {
			if e != nil && e.HasHabit(h.ID) {
				count++
			}
		}
		totalActions += count

		stats = append(stats, HabitStat{
			HabitID:    h.ID,
			Label:      h.Label,
			Icon:       h.Icon,
			Count:      count,
			Percentage: roundRatio(count*100, totalDays),
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Count > stats[j].Count
	})

	return HabitSummary{
		Stats:             stats,
		TotalDays:         totalDays,
		TotalHabitActions: totalActions,
		AveragePerDay:     roundRatio(totalActions, totalDays),
		Encouragement:     encourage(totalDays, totalActions),
	}
}

// roundRatio returns num/den rounded half-up, or 0 when den is 0.
// Both operands are non-negative.
func roundRatio(num, den int) int {
	if den <= 0 {
		return 0
	}
	return (2*num + den) / (2 * den)
}

func encourage(days, actions int) *Encouragement {
	if days < MinDaysForEncouragement {
		return nil
	}

	intro := fmt.Sprintf("You have been keeping the diary for %d days.", days)

	switch {
	case actions >= days*3:
		return &Encouragement{
			Level:   EncouragementExcellent,
			Message: intro + " You are doing a great job with your green habits!",
		}
	case actions >= days:
		return &Encouragement{
			Level:   EncouragementSteady,
			Message: intro + " Keep it up!",
		}
	default:
		return &Encouragement{
			Level:   EncouragementNeedsMore,
			Message: intro + " Try adding a few more habits to your day.",
		}
	}
}
