package domain

import (
	"fmt"
	"time"
)

// TimeSlot represents a one-hour appointment interval in the clinic's
// civil timezone. Start and End always carry the same location and
// End is exactly Start + AppointmentDuration.
type TimeSlot struct {
	Start time.Time
	End   time.Time
}

// NewTimeSlot builds a slot starting at the given instant with the fixed
// appointment duration
func NewTimeSlot(start time.Time) TimeSlot {
	return TimeSlot{
		Start: start,
		End:   start.Add(AppointmentDuration),
	}
}

// Hour returns the civil start hour of the slot (0-23)
func (s TimeSlot) Hour() int {
	return s.Start.Hour()
}

// Date returns the slot's date formatted as DD/MM/YYYY
func (s TimeSlot) Date() string {
	return s.Start.Format(DateFormat)
}

// Time returns the slot's start time formatted as HH:MM
func (s TimeSlot) Time() string {
	return s.Start.Format(TimeFormat)
}

// Key returns the mutual-exclusion key for the slot: date plus start hour.
// Two requests targeting the same calendar hour always produce the same key.
func (s TimeSlot) Key() string {
	return fmt.Sprintf("%s %02d:00", s.Date(), s.Hour())
}

// Contains reports whether the instant falls inside [Start, End)
func (s TimeSlot) Contains(t time.Time) bool {
	return !t.Before(s.Start) && t.Before(s.End)
}
