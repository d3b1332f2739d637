package reservations

import (
	"context"
	"time"

	"github.com/saudesim/agenda-service/internal/integrations/googlecalendar"
)

// CalendarGateway is the slice of the Google Calendar client used by the service.
type CalendarGateway interface {
	ListEvents(ctx context.Context, timeMin, timeMax time.Time) ([]*googlecalendar.Event, error)
	GetEvent(ctx context.Context, eventID string) (*googlecalendar.Event, error)
	DeleteEvent(ctx context.Context, eventID string) error
}

// ReservationIndex is the optional Postgres index mapping reservation ids to event ids.
// The calendar stays the source of truth; the index only short-circuits the event scan.
type ReservationIndex interface {
	GetEventID(ctx context.Context, reservationID string) (string, error)
	Delete(ctx context.Context, reservationID string) error
}

// Metrics counts cancelled reservations.
type Metrics interface {
	IncReservationCancelled()
}

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
