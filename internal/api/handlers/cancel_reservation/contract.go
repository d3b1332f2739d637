package cancel_reservation

import (
	"context"

	"github.com/saudesim/agenda-service/internal/service/reservations/models"
)

type ReservationService interface {
	Cancel(ctx context.Context, reservationID string) (*models.ReservationDetails, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
