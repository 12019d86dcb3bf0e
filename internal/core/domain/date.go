package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidDate  = errors.New("invalid date (must be YYYY-MM-DD)")
	ErrInvalidRange = errors.New("invalid date range")
)

// DateLayout is the canonical key format for entries, selection and comparison.
const DateLayout = "2006-01-02"

// DateKey returns the YYYY-MM-DD key of t in its own location.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDateKey parses a canonical key as midnight in loc.
func ParseDateKey(key string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DateLayout, key, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, key)
	}
	return t, nil
}

func ValidateDateKey(key string) error {
	_, err := ParseDateKey(key, time.UTC)
	return err
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// FormatDisplayDate and FormatMonthTitle are the only places that produce
// human-facing date text.
func FormatDisplayDate(t time.Time) string {
	return t.Format("Monday, 2 January 2006")
}

func FormatMonthTitle(t time.Time) string {
	return t.Format("January 2006")
}
