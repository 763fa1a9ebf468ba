package holiday

import (
	"fmt"
	"slices"

	"github.com/rickar/cal/v2"
)

type krProvider struct {
	holidays []*cal.Holiday
}

// New creates a Provider for Korean public holidays.
func New() Provider {
	return &krProvider{holidays: append(slices.Clone(Holidays), SpecialHolidays...)}
}

// SupportedYears returns the inclusive range of years the provider can answer.
func SupportedYears() (first, last int) {
	return firstLunarYear, lastLunarYear
}

func (p *krProvider) HolidaysFor(years ...int) (Set, error) {
	set := NewSet()
	seen := make(map[int]struct{}, len(years))
	for _, year := range years {
		if _, ok := seen[year]; ok {
			continue
		}
		seen[year] = struct{}{}

		yearSet, err := p.holidaysForYear(year)
		if err != nil {
			return Set{}, err
		}
		set.merge(yearSet)
	}
	return set, nil
}

func (p *krProvider) holidaysForYear(year int) (Set, error) {
	if year <= 0 {
		return Set{}, fmt.Errorf("year %d is not a valid calendar year: %w", year, ErrDataUnavailable)
	}
	if !lunarSupported(year) {
		return Set{}, fmt.Errorf("no lunar dates for %d (supported %d-%d): %w",
			year, firstLunarYear, lastLunarYear, ErrDataUnavailable)
	}

	set := NewSet()
	byDate := make(map[Date][]*cal.Holiday, len(p.holidays))
	for _, h := range p.holidays {
		actual, _ := h.Calc(year)
		if actual.IsZero() {
			continue
		}
		d := DateOf(actual)
		set.Add(d, h.Name)
		byDate[d] = append(byDate[d], h)
	}

	addSubstitutes(&set, byDate)
	return set, nil
}

func sortDates(dates []Date) {
	slices.SortFunc(dates, compareDates)
}
