package calendar

import (
	"time"

	"github.com/eugenenazirov/krcalendar/internal/holiday"
)

// Kind classifies a grid cell for display.
type Kind int

const (
	KindBlank Kind = iota
	KindWeekday
	KindWeekend
	KindHoliday
)

func (k Kind) String() string {
	switch k {
	case KindWeekday:
		return "weekday"
	case KindWeekend:
		return "weekend"
	case KindHoliday:
		return "holiday"
	default:
		return "blank"
	}
}

// Cell is one day slot of a week. Blank cells pad the first and last week.
type Cell struct {
	Date  holiday.Date
	Kind  Kind
	Today bool
}

func (c Cell) Blank() bool {
	return c.Kind == KindBlank
}

// Week holds seven cells starting at the grid's WeekStart.
type Week [7]Cell

// Grid is the week-by-week layout of one month.
type Grid struct {
	Year      int
	Month     time.Month
	WeekStart time.Weekday
	Weeks     []Week
}

// Cells returns the non-blank cells in date order.
func (g Grid) Cells() []Cell {
	cells := make([]Cell, 0, 31)
	for _, week := range g.Weeks {
		for _, c := range week {
			if !c.Blank() {
				cells = append(cells, c)
			}
		}
	}
	return cells
}

// Weekdays returns the column order of the grid.
func (g Grid) Weekdays() [7]time.Weekday {
	var out [7]time.Weekday
	for i := range out {
		out[i] = time.Weekday((int(g.WeekStart) + i) % 7)
	}
	return out
}
