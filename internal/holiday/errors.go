package holiday

import "errors"

var (
	// ErrDataUnavailable is returned when holiday data cannot be supplied for a requested year.
	ErrDataUnavailable = errors.New("holiday data unavailable")
)
