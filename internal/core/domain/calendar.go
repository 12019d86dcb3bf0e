package domain

import "time"

// CalendarCell is one slot of the month grid. Padding cells have an empty
// Date and a zero Day.
type CalendarCell struct {
	Date       string `json:"date"`
	Day        int    `json:"day"`
	IsFilled   bool   `json:"is_filled"`
	IsToday    bool   `json:"is_today"`
	IsSelected bool   `json:"is_selected"`
}

func (c CalendarCell) IsPadding() bool {
	return c.Date == ""
}

// Weekdays are the grid's column headers, Monday first.
var Weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// BuildMonthGrid lays out the month containing reference as Monday-first
// rows, comparing against the current system date for IsToday.
func BuildMonthGrid(reference time.Time, selected string, entries EntrySet) []CalendarCell {
	return BuildMonthGridAt(reference, selected, entries, time.Now())
}

func BuildMonthGridAt(reference time.Time, selected string, entries EntrySet, today time.Time) []CalendarCell {
	loc := reference.Location()
	year, month, _ := reference.Date()

	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, loc)
	today = today.In(loc)

	padding := LeadingPadding(first.Weekday())

	cells := make([]CalendarCell, 0, padding+last.Day())
	for i := 0; i < padding; i++ {
		cells = append(cells, CalendarCell{})
	}

	for d := 1; d <= last.Day(); d++ {
		day := time.Date(year, month, d, 0, 0, 0, 0, loc)
		key := DateKey(day)

		cells = append(cells, CalendarCell{
			Date:       key,
			Day:        d,
			IsFilled:   entries[key].IsFilled(),
			IsToday:    sameDay(day, today),
			IsSelected: key == selected,
		})
	}

	return cells
}

// LeadingPadding is the number of blank cells before day 1 in a Monday-first
// grid: Sunday yields 6, Monday 0.
func LeadingPadding(firstWeekday time.Weekday) int {
	if firstWeekday == time.Sunday {
		return 6
	}
	return int(firstWeekday) - 1
}

// MonthView is a rendered month: header data plus the grid.
type MonthView struct {
	Title      string         `json:"title"`
	Month      string         `json:"month"`
	Selected   string         `json:"selected"`
	Weekdays   []string       `json:"weekdays"`
	Cells      []CalendarCell `json:"cells"`
	FilledDays int            `json:"filled_days"`
	EntryCount int            `json:"entry_count"`
}
