package cancel_reservation

import (
	"errors"
	"net/http"

	"github.com/saudesim/agenda-service/internal/api/handlers"
	"github.com/saudesim/agenda-service/internal/service/reservations"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgMissingResID       = "res_id obrigatório"
	msgNotFound           = "reserva não encontrada"
	msgUpstream           = "falha ao acessar a agenda, tente novamente em instantes"
)

// CancelRequest HTTP request model
type CancelRequest struct {
	ResID string `json:"res_id"`
}

// CancelResponse HTTP response model
type CancelResponse struct {
	Status string `json:"status"`
	ResID  string `json:"res_id"`
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

// Handle POST /cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CancelRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /cancel - Invalid request body: %v", err)
		handlers.RespondValidationError(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Cancel(r.Context(), req.ResID)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("POST /cancel - Missing res_id")
			handlers.RespondValidationError(w, msgMissingResID)

		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("POST /cancel - Reservation not found: res_id=%s", req.ResID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrUpstream):
			h.logger.Error("POST /cancel - Calendar gateway failed: res_id=%s, error=%v", req.ResID, err)
			handlers.RespondUpstreamError(w, msgUpstream)

		default:
			h.logger.Error("POST /cancel - Failed to cancel: res_id=%s, error=%v", req.ResID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /cancel - Reservation cancelled: res_id=%s, event_id=%s", result.ReservationID, result.EventID)
	handlers.RespondJSON(w, http.StatusOK, CancelResponse{
		Status: "deleted",
		ResID:  result.ReservationID,
	})
}
