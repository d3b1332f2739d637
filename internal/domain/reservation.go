package domain

// ReservationStatus represents the lifecycle state of a reservation
type ReservationStatus string

const (
	StatusRequested   ReservationStatus = "requested"
	StatusScheduled   ReservationStatus = "scheduled"
	StatusRescheduled ReservationStatus = "rescheduled"
	StatusCancelled   ReservationStatus = "cancelled"
)

// Channel represents how the appointment is delivered
type Channel string

const (
	ChannelOnline   Channel = "online"
	ChannelInPerson Channel = "presencial"
)

// ParseChannel validates and normalizes a channel value from the wire
func ParseChannel(s string) (Channel, bool) {
	switch Channel(s) {
	case ChannelOnline:
		return ChannelOnline, true
	case ChannelInPerson:
		return ChannelInPerson, true
	default:
		return "", false
	}
}

// Reservation represents a logical appointment on the shared calendar.
// It has no storage of its own: the durable form is a calendar event whose
// description embeds the reservation marker, so every field here is either
// caller-supplied or recomputed from the event on each request.
type Reservation struct {
	ReservationID string
	PatientName   string
	Phone         string
	Email         string
	Channel       Channel
	PaymentMethod string
	Libras        bool
	Price         float64
	Location      string
	Notes         *string
	Slot          TimeSlot
	Status        ReservationStatus

	// EventID is the calendar-native id of the backing event. It is only
	// known after the event has been resolved through the gateway and is
	// never exposed to the bot, which keeps only the reservation id.
	EventID string
}

// IsOnline returns true if the appointment is delivered remotely
func (r *Reservation) IsOnline() bool {
	return r.Channel == ChannelOnline
}

// CanBeRescheduled returns true if the reservation is in a state that
// allows moving it to another slot
func (r *Reservation) CanBeRescheduled() bool {
	return r.Status == StatusScheduled || r.Status == StatusRescheduled
}

// CanBeCancelled returns true if the reservation can still be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status != StatusCancelled
}
