package create_reservation

import (
	"context"
	"time"

	"github.com/saudesim/agenda-service/internal/domain"
	"github.com/saudesim/agenda-service/internal/integrations/googlecalendar"
)

// CalendarGateway is the slice of the Google Calendar client used here.
type CalendarGateway interface {
	ListEvents(ctx context.Context, timeMin, timeMax time.Time) ([]*googlecalendar.Event, error)
	InsertEvent(ctx context.Context, input *googlecalendar.EventInput) (*googlecalendar.Event, error)
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

// Metrics counts created reservations and rejected conflicts.
type Metrics interface {
	IncReservationCreated()
	IncSlotConflict()
}

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
