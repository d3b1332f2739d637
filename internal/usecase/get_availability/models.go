package get_availability

// Request asks for the free hourly slots of one civil day.
type Request struct {
	Date string // DD/MM/YYYY
}

// Response lists the free start times of the day, ascending HH:00.
type Response struct {
	Date           string
	AvailableTimes []string
}
