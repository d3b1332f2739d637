package reschedule_reservation

import (
	"context"
	"time"

	"github.com/saudesim/agenda-service/internal/domain"
	"github.com/saudesim/agenda-service/internal/integrations/googlecalendar"
)

// ReservationFinder resolves a reservation id to its backing calendar event.
type ReservationFinder interface {
	FindByReservationID(ctx context.Context, reservationID string) (*googlecalendar.Event, error)
}

// CalendarGateway is the slice of the Google Calendar client used here.
type CalendarGateway interface {
	ListEvents(ctx context.Context, timeMin, timeMax time.Time) ([]*googlecalendar.Event, error)
	UpdateEvent(ctx context.Context, eventID string, input *googlecalendar.EventInput) (*googlecalendar.Event, error)
}

// ReservationIndex is the optional Postgres lookup accelerator.
type ReservationIndex interface {
	Put(ctx context.Context, reservationID, eventID string, slotStart time.Time) error
}

// ScheduleNormalizer turns the bot's date/time strings into a one-hour slot.
type ScheduleNormalizer interface {
	ToInterval(dateStr, timeStr string) (domain.TimeSlot, error)
}

// PricingPolicy computes the consultation price for a slot.
type PricingPolicy interface {
	PriceFor(slot domain.TimeSlot) float64
}

// SlotLocker serializes booking attempts targeting the same slot.
type SlotLocker interface {
	Lock(key string)
	Unlock(key string)
}

// Metrics counts successful moves and rejected conflicts.
type Metrics interface {
	IncReservationMoved()
	IncSlotConflict()
}

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
