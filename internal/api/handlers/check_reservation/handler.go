package check_reservation

import (
	"errors"
	"net/http"

	"github.com/saudesim/agenda-service/internal/api/handlers"
	"github.com/saudesim/agenda-service/internal/service/reservations"
	"github.com/saudesim/agenda-service/internal/service/reservations/models"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgMissingResID       = "res_id obrigatório"
	msgNotFound           = "reserva não encontrada"
	msgUpstream           = "falha ao acessar a agenda, tente novamente em instantes"
)

// CheckRequest HTTP request model
type CheckRequest struct {
	ResID string `json:"res_id"`
}

// CheckResponse HTTP response model
type CheckResponse struct {
	Status   string `json:"status"`
	ResID    string `json:"res_id"`
	Data     string `json:"data"`
	Hora     string `json:"hora"`
	Local    string `json:"local"`
	MeetLink string `json:"meet_link,omitempty"`
}

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /check-by-reservation
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /check-by-reservation - Invalid request body: %v", err)
		handlers.RespondValidationError(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Check(r.Context(), req.ResID)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("POST /check-by-reservation - Missing res_id")
			handlers.RespondValidationError(w, msgMissingResID)

		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("POST /check-by-reservation - Reservation not found: res_id=%s", req.ResID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrUpstream):
			h.logger.Error("POST /check-by-reservation - Calendar gateway failed: res_id=%s, error=%v", req.ResID, err)
			handlers.RespondUpstreamError(w, msgUpstream)

		default:
			h.logger.Error("POST /check-by-reservation - Failed to check: res_id=%s, error=%v", req.ResID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /check-by-reservation - Reservation found: res_id=%s, data=%s, hora=%s",
		result.ReservationID, result.Date, result.Time)
	handlers.RespondJSON(w, http.StatusOK, fromDetails(result))
}

func fromDetails(details *models.ReservationDetails) *CheckResponse {
	return &CheckResponse{
		Status:   "found",
		ResID:    details.ReservationID,
		Data:     details.Date,
		Hora:     details.Time,
		Local:    details.Location,
		MeetLink: details.MeetLink,
	}
}
