package models

import (
	"github.com/saudesim/agenda-service/internal/domain"
	"github.com/saudesim/agenda-service/internal/integrations/googlecalendar"
)

// ReservationDetails is the read model returned by lookup operations.
type ReservationDetails struct {
	ReservationID string
	EventID       string
	Date          string
	Time          string
	Location      string
	MeetLink      string
}

// FromEvent builds reservation details out of a calendar event.
func FromEvent(reservationID string, event *googlecalendar.Event) *ReservationDetails {
	return &ReservationDetails{
		ReservationID: reservationID,
		EventID:       event.ID,
		Date:          event.Start.Format(domain.DateFormat),
		Time:          event.Start.Format(domain.TimeFormat),
		Location:      event.Location,
		MeetLink:      event.MeetLink,
	}
}
