package domain

import "errors"

var (
	ErrInvalidBookletLength = errors.New("booklet length must be between 1 and 366 days")
)

const (
	DefaultBookletDays = 30
	MaxBookletDays     = 366
)

type BookletPage struct {
	DayNumber   int       `json:"day_number"`
	Date        string    `json:"date"`
	DisplayDate string    `json:"display_date"`
	Quote       Quote     `json:"quote"`
	Fact        string    `json:"fact"`
	Tip         string    `json:"tip"`
	Entry       *DayEntry `json:"entry,omitempty"`
}

type Booklet struct {
	Title    string        `json:"title"`
	Subtitle string        `json:"subtitle"`
	Features []string      `json:"features"`
	Year     int           `json:"year"`
	Pages    []BookletPage `json:"pages"`
}
