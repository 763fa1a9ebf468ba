package holiday

import (
	"slices"
	"time"
)

// Set holds unique holiday dates together with the names observed on each.
// The zero value is an empty set ready to use.
type Set struct {
	names map[Date][]string
}

// NewSet returns an empty set.
func NewSet() Set {
	return Set{names: make(map[Date][]string)}
}

// Add records name on d. Adding the same name twice is a no-op.
func (s *Set) Add(d Date, name string) {
	if s.names == nil {
		s.names = make(map[Date][]string)
	}
	if slices.Contains(s.names[d], name) {
		return
	}
	s.names[d] = append(s.names[d], name)
}

func (s Set) Contains(d Date) bool {
	_, ok := s.names[d]
	return ok
}

// Names returns a copy of the names recorded for d.
func (s Set) Names(d Date) []string {
	return slices.Clone(s.names[d])
}

func (s Set) Len() int {
	return len(s.names)
}

// Dates returns every date in the set in ascending order.
func (s Set) Dates() []Date {
	out := make([]Date, 0, len(s.names))
	for d := range s.names {
		out = append(out, d)
	}
	slices.SortFunc(out, compareDates)
	return out
}

// InMonth returns the subset of dates falling in the given month.
func (s Set) InMonth(year int, month time.Month) []Date {
	var out []Date
	for _, d := range s.Dates() {
		if d.Year == year && d.Month == month {
			out = append(out, d)
		}
	}
	return out
}

// merge copies every entry of other into s.
func (s *Set) merge(other Set) {
	for d, names := range other.names {
		for _, name := range names {
			s.Add(d, name)
		}
	}
}

func compareDates(a, b Date) int {
	switch {
	case a.Before(b):
		return -1
	case b.Before(a):
		return 1
	default:
		return 0
	}
}
