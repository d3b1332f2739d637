package reschedule_reservation

import (
	"errors"
	"fmt"

	"github.com/saudesim/agenda-service/internal/schedule"
)

var (
	// ErrInvalidInput is returned when a required field is missing or malformed
	ErrInvalidInput = errors.New("reschedule_reservation: invalid input data")

	// ErrInvalidDate is returned when the new date is not a real DD/MM/YYYY day
	ErrInvalidDate = errors.New("reschedule_reservation: invalid date")

	// ErrInvalidTime is returned when the new time matches neither H nor HH:MM
	ErrInvalidTime = errors.New("reschedule_reservation: invalid time")

	// ErrReservationNotFound is returned when no upcoming event carries the marker
	ErrReservationNotFound = errors.New("reschedule_reservation: reservation not found")

	// ErrSlotOccupied is returned when the target hour is taken by another event
	ErrSlotOccupied = errors.New("reschedule_reservation: slot is already booked")

	// ErrUpstream is returned when the calendar gateway failed; the event keeps
	// its previous slot
	ErrUpstream = errors.New("reschedule_reservation: calendar gateway unavailable")

	// ErrInternal is returned on internal usecase errors
	ErrInternal = errors.New("reschedule_reservation: internal error")
)

// mapScheduleError translates normalizer failures into usecase sentinels.
func mapScheduleError(err error) error {
	switch {
	case errors.Is(err, schedule.ErrInvalidDate):
		return fmt.Errorf("%w: %v", ErrInvalidDate, err)
	case errors.Is(err, schedule.ErrInvalidTime):
		return fmt.Errorf("%w: %v", ErrInvalidTime, err)
	default:
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
}
