package reschedule_reservation

// Request carries the reschedule fields sent by the bot. Channel is
// optional: when present, the appointment also switches between online
// and in-person delivery.
type Request struct {
	ReservationID string
	Date          string  // new date, DD/MM/YYYY
	Time          string  // new time: H, HH or HH:MM
	Channel       *string // optional new channel
}

// Response describes the reservation after the move.
type Response struct {
	ReservationID string
	EventID       string
	Date          string // DD/MM/YYYY
	Time          string // normalized HH:MM
	Price         float64
	Location      string
	MeetLink      string
}
