package reservations

import "errors"

var (
	// ErrReservationNotFound is returned when no upcoming event carries the reservation marker
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrInvalidInput is returned when the reservation id is empty or malformed
	ErrInvalidInput = errors.New("invalid input data")

	// ErrUpstream is returned when the calendar gateway failed and the outcome is unknown
	ErrUpstream = errors.New("calendar gateway unavailable")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("service: internal error")
)
