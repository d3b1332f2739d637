package googlecalendar

import "errors"

var (
	// ErrEventNotFound is returned when the calendar has no event with the
	// requested id
	ErrEventNotFound = errors.New("googlecalendar client: event not found")

	// ErrUpstream is returned when a Calendar API call fails or times out.
	// Callers must treat this as "unknown state", never as "slot free".
	ErrUpstream = errors.New("googlecalendar client: upstream call failed")

	// ErrInternal is returned when the client itself cannot build a request
	ErrInternal = errors.New("googlecalendar client: internal error")
)
