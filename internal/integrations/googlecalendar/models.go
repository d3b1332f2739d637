package googlecalendar

import "time"

// Event is the gateway-side view of a calendar event. Only the fields the
// booking flow needs are mapped; everything else stays inside the API.
type Event struct {
	ID          string
	Summary     string
	Description string
	Location    string
	Start       time.Time
	End         time.Time

	// MeetLink is the conference link Google attaches to online events,
	// when one exists.
	MeetLink string
}

// EventInput carries the fields for an insert or update. Start and End are
// instants in the clinic timezone; the client serializes them with an
// explicit offset and the configured timezone id.
type EventInput struct {
	Summary       string
	Description   string
	Location      string
	Start         time.Time
	End           time.Time
	AttendeeEmail string
}

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
