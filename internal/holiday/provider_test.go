package holiday

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestHolidaysForIncludesNewYear(t *testing.T) {
	t.Parallel()

	set, err := New().HolidaysFor(2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !set.Contains(NewDate(2024, time.January, 1)) {
		t.Fatalf("expected 2024-01-01 in holiday set, got %v", set.Dates())
	}
}

func TestHolidaysForYears(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		year    int
		want    []Date
		notWant []Date
		count   int
	}{
		{
			name: "2024",
			year: 2024,
			want: []Date{
				{2024, time.February, 9},
				{2024, time.February, 10},
				{2024, time.February, 11},
				{2024, time.February, 12},
				{2024, time.May, 6},
				{2024, time.May, 15},
				{2024, time.September, 16},
				{2024, time.September, 18},
				{2024, time.December, 25},
				{2024, time.April, 10},
				{2024, time.October, 1},
			},
			notWant: []Date{
				{2024, time.September, 19},
			},
			count: 19,
		},
		{
			name: "2025",
			year: 2025,
			want: []Date{
				{2025, time.January, 28},
				{2025, time.March, 3},
				{2025, time.May, 5},
				{2025, time.May, 6},
				{2025, time.October, 5},
				{2025, time.October, 8},
				{2025, time.October, 9},
				{2025, time.January, 27},
				{2025, time.June, 3},
			},
			notWant: []Date{
				{2025, time.March, 2},
				{2025, time.May, 7},
			},
			count: 19,
		},
		{
			name: "2026",
			year: 2026,
			want: []Date{
				{2026, time.February, 16},
				{2026, time.March, 2},
				{2026, time.May, 25},
				{2026, time.August, 17},
				{2026, time.September, 26},
				{2026, time.October, 5},
			},
			notWant: []Date{
				{2026, time.February, 19},
				{2026, time.September, 28},
			},
		},
		{
			name: "2017 Chuseok eve on National Foundation Day",
			year: 2017,
			want: []Date{
				{2017, time.January, 30},
				{2017, time.October, 3},
				{2017, time.October, 6},
			},
		},
		{
			name: "2020 weekend rule for national days not yet in force",
			year: 2020,
			want: []Date{
				{2020, time.January, 27},
				{2020, time.April, 15},
				{2020, time.August, 17},
			},
			notWant: []Date{
				{2020, time.October, 5},
			},
		},
		{
			name: "2021 weekend rule for national days",
			year: 2021,
			want: []Date{
				{2021, time.August, 16},
				{2021, time.October, 4},
				{2021, time.October, 11},
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			set, err := New().HolidaysFor(tc.year)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, d := range tc.want {
				if !set.Contains(d) {
					t.Fatalf("expected %s in holiday set %v", d, set.Dates())
				}
			}
			for _, d := range tc.notWant {
				if set.Contains(d) {
					t.Fatalf("did not expect %s in holiday set (names %v)", d, set.Names(d))
				}
			}
			if tc.count > 0 && set.Len() != tc.count {
				t.Fatalf("expected %d holiday dates, got %d: %v", tc.count, set.Len(), set.Dates())
			}
		})
	}
}

func TestHolidaysForSubstituteNames(t *testing.T) {
	t.Parallel()

	set, err := New().HolidaysFor(2025)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	names := set.Names(NewDate(2025, time.May, 5))
	if len(names) != 2 {
		t.Fatalf("expected Children's Day and Buddha's Birthday on 2025-05-05, got %v", names)
	}

	sub := set.Names(NewDate(2025, time.May, 6))
	if len(sub) != 1 {
		t.Fatalf("expected one substitute on 2025-05-06, got %v", sub)
	}
	if want := substitutePrefix + ChildrensDay.Name; sub[0] != want {
		t.Fatalf("expected %q, got %q", want, sub[0])
	}
}

func TestHolidaysForSpecialDays(t *testing.T) {
	t.Parallel()

	tests := []struct {
		date Date
		name string
	}{
		{Date{2017, time.May, 9}, "Presidential Election Day"},
		{Date{2020, time.August, 17}, "Temporary Public Holiday"},
		{Date{2022, time.March, 9}, "Presidential Election Day"},
		{Date{2022, time.June, 1}, "Local Election Day"},
		{Date{2024, time.April, 10}, "National Assembly Election Day"},
		{Date{2024, time.October, 1}, "Armed Forces Day"},
		{Date{2025, time.January, 27}, "Temporary Public Holiday"},
		{Date{2025, time.June, 3}, "Presidential Election Day"},
	}

	for _, tc := range tests {
		set, err := New().HolidaysFor(tc.date.Year)
		if err != nil {
			t.Fatalf("unexpected error for %d: %v", tc.date.Year, err)
		}
		names := set.Names(tc.date)
		if len(names) != 1 || names[0] != tc.name {
			t.Fatalf("expected %q on %s, got %v", tc.name, tc.date, names)
		}
	}

	// one-off days do not repeat in later years
	set, err := New().HolidaysFor(2021)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if set.Contains(NewDate(2021, time.August, 17)) || set.Contains(NewDate(2021, time.April, 15)) {
		t.Fatalf("special holidays leaked into 2021: %v", set.Dates())
	}
}

func TestHolidaysForMultipleYears(t *testing.T) {
	t.Parallel()

	set, err := New().HolidaysFor(2024, 2025, 2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if set.Len() != 38 {
		t.Fatalf("expected 38 dates across 2024 and 2025, got %d", set.Len())
	}

	single, err := New().HolidaysFor()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if single.Len() != 0 {
		t.Fatalf("expected empty set for no years, got %d", single.Len())
	}
}

func TestHolidaysForUnavailableYears(t *testing.T) {
	t.Parallel()

	first, last := SupportedYears()
	for _, year := range []int{0, -1, first - 1, last + 1, 2030} {
		year := year
		t.Run(fmt.Sprintf("year_%d", year), func(t *testing.T) {
			if _, err := New().HolidaysFor(2024, year); !errors.Is(err, ErrDataUnavailable) {
				t.Fatalf("expected ErrDataUnavailable for %d, got %v", year, err)
			}
		})
	}
}

func TestHolidaysForEverySupportedYear(t *testing.T) {
	t.Parallel()

	first, last := SupportedYears()
	for year := first; year <= last; year++ {
		set, err := New().HolidaysFor(year)
		if err != nil {
			t.Fatalf("unexpected error for %d: %v", year, err)
		}
		// 15 holidays, at most one pair coinciding
		if set.Len() < 14 {
			t.Fatalf("expected at least 14 holiday dates in %d, got %d", year, set.Len())
		}
		for _, d := range set.Dates() {
			if d.Year != year {
				t.Fatalf("holiday %s leaked outside of %d", d, year)
			}
		}
		for _, d := range set.Dates() {
			for _, name := range set.Names(d) {
				if strings.HasPrefix(name, substitutePrefix) && d.IsWeekend() {
					t.Fatalf("substitute %s falls on a weekend", d)
				}
			}
		}
	}
}
