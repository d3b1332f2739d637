package reschedule_reservation

import (
	"fmt"
	"strings"

	"github.com/saudesim/agenda-service/internal/domain"
	"github.com/saudesim/agenda-service/internal/integrations/googlecalendar"
)

// validateRequest checks required fields and parses the optional channel.
func validateRequest(req *Request) (*domain.Channel, error) {
	if strings.TrimSpace(req.ReservationID) == "" {
		return nil, fmt.Errorf("%w: reservation id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Date) == "" {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Time) == "" {
		return nil, fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	if req.Channel == nil {
		return nil, nil
	}
	channel, ok := domain.ParseChannel(*req.Channel)
	if !ok {
		return nil, fmt.Errorf("%w: unknown channel %q", ErrInvalidInput, *req.Channel)
	}
	return &channel, nil
}

// slotTakenByOther reports whether an event other than the one being moved
// starts inside the target slot.
func slotTakenByOther(events []*googlecalendar.Event, slot domain.TimeSlot, ownEventID string) bool {
	for _, event := range events {
		if event.ID == ownEventID {
			continue
		}
		if slot.Contains(event.Start) {
			return true
		}
	}
	return false
}
