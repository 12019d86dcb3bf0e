package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownHabit = errors.New("unknown habit id")
)

const (
	HabitSort    = "sort"
	HabitBottle  = "bottle"
	HabitWater   = "water"
	HabitPlastic = "plastic"
	HabitBike    = "bike"
	HabitLight   = "light"
	HabitFood    = "food"
	HabitBags    = "bags"
)

type Habit struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// Catalog is an ordered, read-only list of habits. Order matters: it breaks
// ties when statistics are sorted.
type Catalog []Habit

var defaultCatalog = Catalog{
	{ID: HabitSort, Label: "Sorted my waste", Icon: "recycle"},
	{ID: HabitBottle, Label: "Used a reusable bottle", Icon: "droplets"},
	{ID: HabitWater, Label: "Cut down on water use", Icon: "waves"},
	{ID: HabitPlastic, Label: "Refused single-use plastic", Icon: "ban"},
	{ID: HabitBike, Label: "Cycled or walked instead of driving", Icon: "bike"},
	{ID: HabitLight, Label: "Switched off lights when leaving", Icon: "lightbulb"},
	{ID: HabitFood, Label: "Threw no food away", Icon: "utensils-crossed"},
	{ID: HabitBags, Label: "Used a cloth bag", Icon: "shopping-bag"},
}

// DefaultCatalog returns a copy of the built-in habit catalog.
func DefaultCatalog() Catalog {
	out := make(Catalog, len(defaultCatalog))
	copy(out, defaultCatalog)
	return out
}

func (c Catalog) Lookup(id string) (Habit, bool) {
	for _, h := range c {
		if h.ID == id {
			return h, true
		}
	}
	return Habit{}, false
}

func (c Catalog) Contains(id string) bool {
	_, ok := c.Lookup(id)
	return ok
}

// Validate reports the first id that is not part of the catalog.
func (c Catalog) Validate(ids []string) error {
	for _, id := range ids {
		if !c.Contains(id) {
			return fmt.Errorf("%w: %q", ErrUnknownHabit, id)
		}
	}
	return nil
}
