package create_event

import (
	"errors"
	"net/http"

	"github.com/saudesim/agenda-service/internal/api/handlers"
	createReservation "github.com/saudesim/agenda-service/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidFields      = "campos obrigatórios ausentes ou inválidos"
	msgInvalidDate        = "data inválida, esperado DD/MM/AAAA"
	msgInvalidTime        = "horário inválido, esperado HH:MM"
	msgSlotOccupied       = "horário indisponível, por favor escolha outro"
	msgUpstream           = "falha ao acessar a agenda, tente novamente em instantes"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /create-event
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /create-event - Invalid request body: %v", err)
		handlers.RespondValidationError(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrSlotOccupied):
			h.logger.Warn("POST /create-event - Slot occupied: res_id=%s, data=%s, hora=%s", req.ResID, req.Data, req.Hora)
			handlers.RespondConflict(w, msgSlotOccupied)

		case errors.Is(err, createReservation.ErrInvalidDate):
			h.logger.Warn("POST /create-event - Invalid date: res_id=%s, data=%s", req.ResID, req.Data)
			handlers.RespondValidationError(w, msgInvalidDate)

		case errors.Is(err, createReservation.ErrInvalidTime):
			h.logger.Warn("POST /create-event - Invalid time: res_id=%s, hora=%s", req.ResID, req.Hora)
			handlers.RespondValidationError(w, msgInvalidTime)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /create-event - Validation failed: res_id=%s, error=%v", req.ResID, err)
			handlers.RespondValidationError(w, msgInvalidFields)

		case errors.Is(err, createReservation.ErrUpstream):
			h.logger.Error("POST /create-event - Calendar gateway failed: res_id=%s, error=%v", req.ResID, err)
			handlers.RespondUpstreamError(w, msgUpstream)

		default:
			h.logger.Error("POST /create-event - Failed to create reservation: res_id=%s, error=%v", req.ResID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /create-event - Reservation created: res_id=%s, event_id=%s", result.ReservationID, result.EventID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
