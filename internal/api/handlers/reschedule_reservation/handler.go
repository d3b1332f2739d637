package reschedule_reservation

import (
	"errors"
	"net/http"

	"github.com/saudesim/agenda-service/internal/api/handlers"
	rescheduleReservation "github.com/saudesim/agenda-service/internal/usecase/reschedule_reservation"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidFields      = "campos obrigatórios ausentes ou inválidos"
	msgInvalidDate        = "data inválida, esperado DD/MM/AAAA"
	msgInvalidTime        = "horário inválido, esperado HH:MM"
	msgNotFound           = "reserva não encontrada"
	msgSlotOccupied       = "novo horário indisponível, por favor escolha outro"
	msgUpstream           = "falha ao acessar a agenda, tente novamente em instantes"
)

type Handler struct {
	useCase RescheduleReservationUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /reschedule-by-reservation
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RescheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reschedule-by-reservation - Invalid request body: %v", err)
		handlers.RespondValidationError(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, rescheduleReservation.ErrReservationNotFound):
			h.logger.Warn("POST /reschedule-by-reservation - Reservation not found: res_id=%s", req.ResID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rescheduleReservation.ErrSlotOccupied):
			h.logger.Warn("POST /reschedule-by-reservation - Slot occupied: res_id=%s, data=%s, hora=%s", req.ResID, req.Data, req.Hora)
			handlers.RespondConflict(w, msgSlotOccupied)

		case errors.Is(err, rescheduleReservation.ErrInvalidDate):
			h.logger.Warn("POST /reschedule-by-reservation - Invalid date: res_id=%s, data=%s", req.ResID, req.Data)
			handlers.RespondValidationError(w, msgInvalidDate)

		case errors.Is(err, rescheduleReservation.ErrInvalidTime):
			h.logger.Warn("POST /reschedule-by-reservation - Invalid time: res_id=%s, hora=%s", req.ResID, req.Hora)
			handlers.RespondValidationError(w, msgInvalidTime)

		case errors.Is(err, rescheduleReservation.ErrInvalidInput):
			h.logger.Warn("POST /reschedule-by-reservation - Validation failed: res_id=%s, error=%v", req.ResID, err)
			handlers.RespondValidationError(w, msgInvalidFields)

		case errors.Is(err, rescheduleReservation.ErrUpstream):
			h.logger.Error("POST /reschedule-by-reservation - Calendar gateway failed: res_id=%s, error=%v", req.ResID, err)
			handlers.RespondUpstreamError(w, msgUpstream)

		default:
			h.logger.Error("POST /reschedule-by-reservation - Failed to reschedule: res_id=%s, error=%v", req.ResID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reschedule-by-reservation - Reservation moved: res_id=%s, data=%s, hora=%s",
		result.ReservationID, result.Date, result.Time)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
