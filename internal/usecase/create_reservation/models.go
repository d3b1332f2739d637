package create_reservation

// Request carries the booking fields as sent by the bot, after transport
// decoding but before any validation or normalization.
type Request struct {
	ReservationID string
	PatientName   string
	Phone         string
	Email         string
	Date          string // DD/MM/YYYY
	Time          string // H, HH or HH:MM
	Channel       string // "online" or "presencial"
	PaymentMethod string
	Libras        bool
	Notes         *string
}

// Response describes the booked appointment.
type Response struct {
	ReservationID string
	EventID       string
	Date          string // DD/MM/YYYY
	Time          string // normalized HH:MM
	Price         float64
	Location      string
	MeetLink      string
}
