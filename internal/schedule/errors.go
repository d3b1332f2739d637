package schedule

import "errors"

var (
	// ErrInvalidDate is returned when the date string does not match
	// DD/MM/YYYY or does not denote a real calendar day
	ErrInvalidDate = errors.New("schedule: invalid date")

	// ErrInvalidTime is returned when the time string is neither a bare
	// hour nor HH:MM
	ErrInvalidTime = errors.New("schedule: invalid time")

	// ErrInvalidTimezone is returned when the configured timezone cannot
	// be loaded
	ErrInvalidTimezone = errors.New("schedule: invalid timezone")
)
