package create_reservation

import (
	"errors"
	"fmt"

	"github.com/saudesim/agenda-service/internal/schedule"
)

var (
	// ErrInvalidInput is returned when a required field is missing or malformed
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInvalidDate is returned when the date is not a real DD/MM/YYYY day
	ErrInvalidDate = errors.New("create_reservation: invalid date")

	// ErrInvalidTime is returned when the time matches neither H nor HH:MM
	ErrInvalidTime = errors.New("create_reservation: invalid time")

	// ErrSlotOccupied is returned when the requested hour already has an event
	ErrSlotOccupied = errors.New("create_reservation: slot is already booked")

	// ErrUpstream is returned when the calendar gateway failed; the slot state
	// is unknown and the booking is NOT created
	ErrUpstream = errors.New("create_reservation: calendar gateway unavailable")

	// ErrInternal is returned on internal usecase errors
	ErrInternal = errors.New("create_reservation: internal error")
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
