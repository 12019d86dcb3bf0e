package domain

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrGoalTooLong  = errors.New("goal is too long (max 200 chars)")
	ErrNotesTooLong = errors.New("notes are too long (max 5000 chars)")
)

const (
	MaxGoalLen  = 200
	MaxNotesLen = 5000
)

// DayEntry is what the user wrote down for a single date.
type DayEntry struct {
	ID            string   `json:"id"`
	Date          string   `json:"date"`
	Goal          string   `json:"goal"`
	Notes         string   `json:"notes"`
	CheckedHabits []string `json:"checked_habits"`

	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewDayEntry(date string) *DayEntry {
	now := time.Now().UTC()

	return &DayEntry{
		ID:            uuid.NewString(),
		Date:          date,
		CheckedHabits: []string{},
		Version:       1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Fill overwrites the user-editable fields.
func (e *DayEntry) Fill(goal, notes string, checked []string) {
	e.Goal = strings.TrimSpace(goal)
	e.Notes = strings.TrimSpace(notes)
	e.CheckedHabits = NormalizeHabits(checked)
	e.UpdatedAt = time.Now().UTC()
}

// ToggleHabit checks the habit if it is unchecked and unchecks it otherwise.
func (e *DayEntry) ToggleHabit(habitID string) {
	for i, id := range e.CheckedHabits {
		if id == habitID {
			e.CheckedHabits = append(e.CheckedHabits[:i:i], e.CheckedHabits[i+1:]...)
			e.UpdatedAt = time.Now().UTC()
			return
		}
	}
	e.CheckedHabits = append(e.CheckedHabits, habitID)
	e.UpdatedAt = time.Now().UTC()
}

func (e *DayEntry) HasHabit(habitID string) bool {
	if e == nil {
		return false
	}
	for _, id := range e.CheckedHabits {
		if id == habitID {
			return true
		}
	}
	return false
}

// IsFilled reports whether the entry carries any content. A blank entry still
// exists (and counts as a day in statistics) but is not filled.
func (e *DayEntry) IsFilled() bool {
	if e == nil {
		return false
	}
	return e.Goal != "" || e.Notes != "" || len(e.CheckedHabits) > 0
}

func (e *DayEntry) Validate() error {
	if err := ValidateDateKey(e.Date); err != nil {
		return err
	}
	if utf8.RuneCountInString(e.Goal) > MaxGoalLen {
		return ErrGoalTooLong
	}
	if utf8.RuneCountInString(e.Notes) > MaxNotesLen {
		return ErrNotesTooLong
	}
	return nil
}

// Clone returns a deep copy so stores never share slices with callers.
func (e *DayEntry) Clone() *DayEntry {
	c := *e
	c.CheckedHabits = append([]string{}, e.CheckedHabits...)
	return &c
}

// NormalizeHabits drops duplicates and blanks, keeping first-seen order.
func NormalizeHabits(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// EntrySet is the diary's entry collection keyed by date. It is handed to the
// grid builder and the statistics aggregator read-only.
type EntrySet map[string]*DayEntry

func NewEntrySet(entries []*DayEntry) EntrySet {
	set := make(EntrySet, len(entries))
	for _, e := range entries {
		if e == nil {
			continue
		}
		set[e.Date] = e
	}
	return set
}
