package reschedule_reservation

import (
	rescheduleReservation "github.com/saudesim/agenda-service/internal/usecase/reschedule_reservation"
)

// RescheduleRequest HTTP request model. tipo_atd is optional: when present
// the appointment also changes channel.
type RescheduleRequest struct {
	ResID   string  `json:"res_id"`
	Data    string  `json:"data"` // new date, DD/MM/YYYY
	Hora    string  `json:"hora"` // new time: H, HH or HH:MM
	TipoAtd *string `json:"tipo_atd,omitempty"`
}

// RescheduleResponse HTTP response model
type RescheduleResponse struct {
	Status   string  `json:"status"`
	ResID    string  `json:"res_id"`
	Data     string  `json:"data"`
	Hora     string  `json:"hora"`
	Valor    float64 `json:"valor"`
	Local    string  `json:"local"`
	MeetLink string  `json:"meet_link,omitempty"`
}

// ToUseCaseRequest converts the HTTP request into the use case model
func (r *RescheduleRequest) ToUseCaseRequest() *rescheduleReservation.Request {
	return &rescheduleReservation.Request{
		ReservationID: r.ResID,
		Date:          r.Data,
		Time:          r.Hora,
		Channel:       r.TipoAtd,
	}
}

// FromUseCaseResponse converts the use case result into the HTTP response
func FromUseCaseResponse(res *rescheduleReservation.Response) *RescheduleResponse {
	return &RescheduleResponse{
		Status:   "updated",
		ResID:    res.ReservationID,
		Data:     res.Date,
		Hora:     res.Time,
		Valor:    res.Price,
		Local:    res.Location,
		MeetLink: res.MeetLink,
	}
}
