package create_event

import (
	"strings"

	createReservation "github.com/saudesim/agenda-service/internal/usecase/create_reservation"
)

// CreateEventRequest HTTP request model. Field names follow the bot's
// webhook payload contract.
type CreateEventRequest struct {
	ResID   string  `json:"res_id"`
	Nome    string  `json:"nome"`
	Fone    string  `json:"fone"`
	Email   string  `json:"email"`
	Data    string  `json:"data"` // DD/MM/YYYY
	Hora    string  `json:"hora"` // H, HH or HH:MM
	TipoAtd string  `json:"tipo_atd"`
	Pagto   string  `json:"pagto"`
	Libras  string  `json:"libras"` // "sim" / "não"
	Obs     *string `json:"obs,omitempty"`
}

// CreateEventResponse HTTP response model
type CreateEventResponse struct {
	Status   string  `json:"status"`
	ResID    string  `json:"res_id"`
	EventID  string  `json:"event_id"`
	Data     string  `json:"data"`
	Hora     string  `json:"hora"`
	Valor    float64 `json:"valor"`
	Local    string  `json:"local"`
	MeetLink string  `json:"meet_link,omitempty"`
}

// ToUseCaseRequest converts the HTTP request into the use case model
func (r *CreateEventRequest) ToUseCaseRequest() *createReservation.Request {
	return &createReservation.Request{
		ReservationID: r.ResID,
		PatientName:   r.Nome,
		Phone:         r.Fone,
		Email:         r.Email,
		Date:          r.Data,
		Time:          r.Hora,
		Channel:       r.TipoAtd,
		PaymentMethod: r.Pagto,
		Libras:        strings.EqualFold(strings.TrimSpace(r.Libras), "sim"),
		Notes:         r.Obs,
	}
}

// FromUseCaseResponse converts the use case result into the HTTP response
func FromUseCaseResponse(res *createReservation.Response) *CreateEventResponse {
	return &CreateEventResponse{
		Status:   "created",
		ResID:    res.ReservationID,
		EventID:  res.EventID,
		Data:     res.Date,
		Hora:     res.Time,
		Valor:    res.Price,
		Local:    res.Location,
		MeetLink: res.MeetLink,
	}
}
