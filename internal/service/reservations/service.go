package reservations

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/saudesim/agenda-service/internal/domain"
	"github.com/saudesim/agenda-service/internal/integrations/googlecalendar"
	"github.com/saudesim/agenda-service/internal/service/reservations/models"
)

// scanWindow bounds the marker scan: events further ahead are never inspected,
// and events that ended more than a day ago are no longer reachable by id.
const (
	scanLookbehind = 24 * time.Hour
	scanLookahead  = 180 * 24 * time.Hour
)

// Service resolves reservation ids to calendar events and owns the
// lookup and cancellation operations built on top of that resolution.
type Service struct {
	gateway CalendarGateway
	index   ReservationIndex // nil when the Postgres index is disabled
	metrics Metrics
	logger  Logger
}

// NewService creates a reservation service. index may be nil.
func NewService(gateway CalendarGateway, index ReservationIndex, metrics Metrics, logger Logger) *Service {
	return &Service{
		gateway: gateway,
		index:   index,
		metrics: metrics,
		logger:  logger,
	}
}

// FindByReservationID locates the calendar event that carries the reservation marker.
// The Postgres index is consulted first when available; a miss or a stale entry
// falls back to scanning upcoming events. The first marker match is authoritative.
func (s *Service) FindByReservationID(ctx context.Context, reservationID string) (*googlecalendar.Event, error) {
	reservationID = strings.TrimSpace(reservationID)
	if reservationID == "" {
		return nil, fmt.Errorf("%w: empty reservation id", ErrInvalidInput)
	}

	if event := s.lookupIndexed(ctx, reservationID); event != nil {
		return event, nil
	}

	now := time.Now()
	events, err := s.gateway.ListEvents(ctx, now.Add(-scanLookbehind), now.Add(scanLookahead))
	if err != nil {
		s.logger.Error("FindByReservationID: event scan failed for reservation=%s: %v", reservationID, err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	for _, event := range events {
		if domain.HasMarker(event.Description, reservationID) {
			return event, nil
		}
	}

	s.logger.Warn("FindByReservationID: reservation=%s not found among %d upcoming events", reservationID, len(events))
	return nil, ErrReservationNotFound
}

// Check returns the schedule details of a reservation without mutating anything.
func (s *Service) Check(ctx context.Context, reservationID string) (*models.ReservationDetails, error) {
	s.logger.Info("Check: looking up reservation=%s", reservationID)

	event, err := s.FindByReservationID(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Check: reservation=%s resolved to event=%s", reservationID, event.ID)
	return models.FromEvent(reservationID, event), nil
}

// Cancel deletes the calendar event behind a reservation.
func (s *Service) Cancel(ctx context.Context, reservationID string) (*models.ReservationDetails, error) {
	s.logger.Info("Cancel: cancelling reservation=%s", reservationID)

	event, err := s.FindByReservationID(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	if err := s.gateway.DeleteEvent(ctx, event.ID); err != nil {
		if errors.Is(err, googlecalendar.ErrEventNotFound) {
			// Deleted between lookup and delete; the desired end state holds.
			s.logger.Warn("Cancel: event=%s already gone for reservation=%s", event.ID, reservationID)
		} else {
			s.logger.Error("Cancel: delete failed for reservation=%s event=%s: %v", reservationID, event.ID, err)
			return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
		}
	}

	s.dropIndexEntry(ctx, reservationID)
	s.metrics.IncReservationCancelled()

	s.logger.Info("Cancel: reservation=%s cancelled, event=%s removed", reservationID, event.ID)
	return models.FromEvent(reservationID, event), nil
}

// lookupIndexed tries the Postgres fast path. Any failure degrades to the scan.
func (s *Service) lookupIndexed(ctx context.Context, reservationID string) *googlecalendar.Event {
	if s.index == nil {
		return nil
	}

	eventID, err := s.index.GetEventID(ctx, reservationID)
	if err != nil {
		return nil
	}

	event, err := s.gateway.GetEvent(ctx, eventID)
	if err != nil {
		s.logger.Warn("lookupIndexed: indexed event=%s unavailable for reservation=%s: %v", eventID, reservationID, err)
		return nil
	}

	if !domain.HasMarker(event.Description, reservationID) {
		s.logger.Warn("lookupIndexed: stale index entry for reservation=%s (event=%s)", reservationID, eventID)
		return nil
	}
	return event
}

// dropIndexEntry removes the index row, best effort.
func (s *Service) dropIndexEntry(ctx context.Context, reservationID string) {
	if s.index == nil {
		return
	}
	if err := s.index.Delete(ctx, reservationID); err != nil {
		s.logger.Warn("dropIndexEntry: failed to drop index entry for reservation=%s: %v", reservationID, err)
	}
}
