package holiday

import (
	"time"

	"github.com/rickar/cal/v2"
)

const (
	firstLunarYear = 2015
	lastLunarYear  = 2027
)

// Gregorian dates of the lunar holidays as published for Korea (KST). Korea
// and China occasionally disagree on the day of a new moon (2027 Seollal is
// Feb 7 here, Feb 6 in China), so these are not derived from a Chinese table.
var (
	seollalDates = map[int]Date{
		2015: {2015, time.February, 19},
		2016: {2016, time.February, 8},
		2017: {2017, time.January, 28},
		2018: {2018, time.February, 16},
		2019: {2019, time.February, 5},
		2020: {2020, time.January, 25},
		2021: {2021, time.February, 12},
		2022: {2022, time.February, 1},
		2023: {2023, time.January, 22},
		2024: {2024, time.February, 10},
		2025: {2025, time.January, 29},
		2026: {2026, time.February, 17},
		2027: {2027, time.February, 7},
	}

	buddhasBirthdayDates = map[int]Date{
		2015: {2015, time.May, 25},
		2016: {2016, time.May, 14},
		2017: {2017, time.May, 3},
		2018: {2018, time.May, 22},
		2019: {2019, time.May, 12},
		2020: {2020, time.April, 30},
		2021: {2021, time.May, 19},
		2022: {2022, time.May, 8},
		2023: {2023, time.May, 27},
		2024: {2024, time.May, 15},
		2025: {2025, time.May, 5},
		2026: {2026, time.May, 24},
		2027: {2027, time.May, 13},
	}

	chuseokDates = map[int]Date{
		2015: {2015, time.September, 27},
		2016: {2016, time.September, 15},
		2017: {2017, time.October, 4},
		2018: {2018, time.September, 24},
		2019: {2019, time.September, 13},
		2020: {2020, time.October, 1},
		2021: {2021, time.September, 21},
		2022: {2022, time.September, 10},
		2023: {2023, time.September, 29},
		2024: {2024, time.September, 17},
		2025: {2025, time.October, 6},
		2026: {2026, time.September, 25},
		2027: {2027, time.September, 15},
	}
)

// lunarSupported reports whether every lunar table covers year.
func lunarSupported(year int) bool {
	for _, table := range []map[int]Date{seollalDates, buddhasBirthdayDates, chuseokDates} {
		if _, ok := table[year]; !ok {
			return false
		}
	}
	return true
}

// calcLunar builds a cal.HolidayFn that looks the year up in table and
// shifts the result by offset days. Unknown years yield the zero time,
// which cal.Holiday.Calc callers treat as "no occurrence".
func calcLunar(table map[int]Date, offset int) cal.HolidayFn {
	return func(_ *cal.Holiday, year int) time.Time {
		d, ok := table[year]
		if !ok {
			return time.Time{}
		}
		return d.AddDays(offset).Time()
	}
}
