package get_availability

import (
	"errors"
	"net/http"

	"github.com/saudesim/agenda-service/internal/api/handlers"
	getAvailability "github.com/saudesim/agenda-service/internal/usecase/get_availability"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidDate        = "data inválida, esperado DD/MM/AAAA"
	msgUpstream           = "falha ao acessar a agenda, tente novamente em instantes"
)

// AvailabilityRequest HTTP request model
type AvailabilityRequest struct {
	Data string `json:"data"` // DD/MM/YYYY
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Status   string   `json:"status"`
	Data     string   `json:"data"`
	Horarios []string `json:"horarios"`
}

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability - Invalid request body: %v", err)
		handlers.RespondValidationError(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{Date: req.Data})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidDate), errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("POST /availability - Invalid date: data=%s", req.Data)
			handlers.RespondValidationError(w, msgInvalidDate)

		case errors.Is(err, getAvailability.ErrUpstream):
			h.logger.Error("POST /availability - Calendar gateway failed: data=%s, error=%v", req.Data, err)
			handlers.RespondUpstreamError(w, msgUpstream)

		default:
			h.logger.Error("POST /availability - Failed to compute availability: data=%s, error=%v", req.Data, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /availability - data=%s, %d free slots", result.Date, len(result.AvailableTimes))
	handlers.RespondJSON(w, http.StatusOK, AvailabilityResponse{
		Status:   "ok",
		Data:     result.Date,
		Horarios: result.AvailableTimes,
	})
}
