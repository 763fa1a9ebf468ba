package calendar

import (
	"time"

	"github.com/eugenenazirov/krcalendar/internal/holiday"
)

// BuildGrid lays out the given month with weeks starting on weekStart.
// Holidays take precedence over weekends when classifying a day.
func BuildGrid(year, month int, holidays holiday.Set, weekStart time.Weekday) (Grid, error) {
	if year < 1 {
		return Grid{}, ErrInvalidYear
	}
	if month < 1 || month > 12 {
		return Grid{}, ErrInvalidMonth
	}
	if weekStart < time.Sunday || weekStart > time.Saturday {
		weekStart = time.Sunday
	}

	m := time.Month(month)
	days := DaysIn(year, m)
	offset := FirstOffset(year, m, weekStart)

	grid := Grid{
		Year:      year,
		Month:     m,
		WeekStart: weekStart,
		Weeks:     make([]Week, WeekRows(offset, days)),
	}

	for day := 1; day <= days; day++ {
		pos := offset + day - 1
		d := holiday.Date{Year: year, Month: m, Day: day}
		grid.Weeks[pos/7][pos%7] = Cell{Date: d, Kind: classify(d, holidays)}
	}

	return grid, nil
}

// DaysIn returns the number of days in month, accounting for leap years.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 12, 0, 0, 0, time.UTC).Day()
}

// FirstOffset returns the column of day 1 in a week starting on weekStart.
func FirstOffset(year int, month time.Month, weekStart time.Weekday) int {
	first := time.Date(year, month, 1, 12, 0, 0, 0, time.UTC).Weekday()
	return (int(first) - int(weekStart) + 7) % 7
}

// WeekRows returns the number of week rows needed to cover days cells
// starting at column offset.
func WeekRows(offset, days int) int {
	return (offset + days + 6) / 7
}

func classify(d holiday.Date, holidays holiday.Set) Kind {
	switch {
	case holidays.Contains(d):
		return KindHoliday
	case d.IsWeekend():
		return KindWeekend
	default:
		return KindWeekday
	}
}
