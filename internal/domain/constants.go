package domain

import "time"

// Time format constants (Brazilian civil formats used on the wire)
const (
	DateFormat = "02/01/2006" // DD/MM/YYYY
	TimeFormat = "15:04"      // HH:MM
)

// AppointmentDuration is the fixed length of every appointment slot
const AppointmentDuration = time.Hour

// Reservation marker embedded in the event description. The bot platform
// does not retain calendar-native event ids between conversation turns,
// so this marker is the only identity that survives a conversation.
const ReservationMarkerPrefix = "Reserva: "

// Description line labels. The event description is the durable encoding
// of a reservation, one labelled line per field.
const (
	LabelPatient = "Paciente"
	LabelPhone   = "Telefone"
	LabelEmail   = "E-mail"
	LabelChannel = "Atendimento"
	LabelPayment = "Pagamento"
	LabelLibras  = "Libras"
	LabelPrice   = "Valor"
	LabelNotes   = "Obs"
)

// EventSummaryPrefix is prepended to the patient name in the event title
const EventSummaryPrefix = "Consulta Clínica SaúdeSim - "

// Business validation constants
const (
	MaxNotesLength         = 500
	MaxPatientNameLength   = 200
	MaxReservationIDLength = 64
)
