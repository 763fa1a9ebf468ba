package holiday

// Provider describes the behaviour required from a holiday source.
type Provider interface {
	HolidaysFor(years ...int) (Set, error)
}
