package get_availability

import (
	"context"
	"time"

	"github.com/saudesim/agenda-service/internal/integrations/googlecalendar"
)

// CalendarGateway is the slice of the Google Calendar client used here.
type CalendarGateway interface {
	ListEvents(ctx context.Context, timeMin, timeMax time.Time) ([]*googlecalendar.Event, error)
}

// ScheduleNormalizer resolves the civil day window for a date string.
type ScheduleNormalizer interface {
	StartOfDay(dateStr string) (time.Time, error)
	EndOfDay(dateStr string) (time.Time, error)
	Location() *time.Location
}

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
