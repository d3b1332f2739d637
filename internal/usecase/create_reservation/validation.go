package create_reservation

import (
	"fmt"
	"strings"

	"github.com/saudesim/agenda-service/internal/domain"
	"github.com/saudesim/agenda-service/internal/integrations/googlecalendar"
)

// validateRequest checks required fields and bounds; the channel value is
// parsed here because everything downstream works with the typed form.
func validateRequest(req *Request) (domain.Channel, error) {
	if strings.TrimSpace(req.ReservationID) == "" {
		return "", fmt.Errorf("%w: reservation id is required", ErrInvalidInput)
	}
	if len(req.ReservationID) > domain.MaxReservationIDLength {
		return "", fmt.Errorf("%w: reservation id exceeds %d characters", ErrInvalidInput, domain.MaxReservationIDLength)
	}
	if strings.ContainsAny(req.ReservationID, "\n\r") {
		return "", fmt.Errorf("%w: reservation id must not contain line breaks", ErrInvalidInput)
	}

	if strings.TrimSpace(req.PatientName) == "" {
		return "", fmt.Errorf("%w: patient name is required", ErrInvalidInput)
	}
	if len(req.PatientName) > domain.MaxPatientNameLength {
		return "", fmt.Errorf("%w: patient name exceeds %d characters", ErrInvalidInput, domain.MaxPatientNameLength)
	}

	if strings.TrimSpace(req.Phone) == "" {
		return "", fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Email) == "" {
		return "", fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Date) == "" {
		return "", fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Time) == "" {
		return "", fmt.Errorf("%w: time is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.PaymentMethod) == "" {
		return "", fmt.Errorf("%w: payment method is required", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return "", fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	channel, ok := domain.ParseChannel(req.Channel)
	if !ok {
		return "", fmt.Errorf("%w: unknown channel %q", ErrInvalidInput, req.Channel)
	}

	return channel, nil
}

// slotTaken reports whether any listed event starts inside the slot.
// The calendar list filter matches overlapping events, so an event that
// merely spills into the hour (e.g. 09:30-10:30 against the 10:00 slot)
// does not count; only same-hour starts do.
func slotTaken(events []*googlecalendar.Event, slot domain.TimeSlot) bool {
	for _, event := range events {
		if slot.Contains(event.Start) {
			return true
		}
	}
	return false
}
