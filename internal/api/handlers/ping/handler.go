package ping

import (
	"net/http"

	"github.com/saudesim/agenda-service/internal/api/handlers"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Handle GET /ping
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
