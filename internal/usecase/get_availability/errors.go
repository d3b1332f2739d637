package get_availability

import (
	"errors"
	"fmt"

	"github.com/saudesim/agenda-service/internal/schedule"
)

var (
	// ErrInvalidInput is returned when the date field is missing
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrInvalidDate is returned when the date is not a real DD/MM/YYYY day
	ErrInvalidDate = errors.New("get_availability: invalid date")

	// ErrUpstream is returned when the calendar gateway failed
	ErrUpstream = errors.New("get_availability: calendar gateway unavailable")
)

// mapScheduleError translates normalizer failures into usecase sentinels.
func mapScheduleError(err error) error {
	if errors.Is(err, schedule.ErrInvalidDate) {
		return fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	return fmt.Errorf("%w: %v", ErrInvalidInput, err)
}
