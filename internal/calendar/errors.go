package calendar

import "errors"

var (
	// ErrInvalidMonth is returned when the month is outside 1..12.
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
	// ErrInvalidYear is returned when the year is not a positive calendar year.
	ErrInvalidYear = errors.New("year must be a positive integer")
)
