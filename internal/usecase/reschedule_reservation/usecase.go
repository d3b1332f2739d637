package reschedule_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/saudesim/agenda-service/internal/domain"
	"github.com/saudesim/agenda-service/internal/integrations/googlecalendar"
	"github.com/saudesim/agenda-service/internal/service/reservations"
)

// UseCase moves an existing reservation to another one-hour slot,
// recomputing the price for the new hour while preserving the rest of the
// event description, marker included.
type UseCase struct {
	finder           ReservationFinder
	gateway          CalendarGateway
	index            ReservationIndex // nil when the Postgres index is disabled
	normalizer       ScheduleNormalizer
	pricing          PricingPolicy
	locker           SlotLocker
	metrics          Metrics
	locationInPerson string
	locationOnline   string
	logger           Logger
}

// NewUseCase creates the reschedule use case. index may be nil.
func NewUseCase(
	finder ReservationFinder,
	gateway CalendarGateway,
	index ReservationIndex,
	normalizer ScheduleNormalizer,
	pricing PricingPolicy,
	locker SlotLocker,
	metrics Metrics,
	locationInPerson string,
	locationOnline string,
	logger Logger,
) *UseCase {
	return &UseCase{
		finder:           finder,
		gateway:          gateway,
		index:            index,
		normalizer:       normalizer,
		pricing:          pricing,
		locker:           locker,
		metrics:          metrics,
		locationInPerson: locationInPerson,
		locationOnline:   locationOnline,
		logger:           logger,
	}
}

// Execute resolves the reservation, checks the target slot under the slot
// lock and updates the backing event in place. The event's own id is
// excluded from the conflict check, so moving a reservation within its
// current hour (or just changing the channel) is not a conflict.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleReservation: reservation=%s, date=%s, time=%s",
		req.ReservationID, req.Date, req.Time)

	// 1. Validate the raw fields
	newChannel, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("RescheduleReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Resolve the reservation to its calendar event
	event, err := uc.finder.FindByReservationID(ctx, strings.TrimSpace(req.ReservationID))
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			uc.logger.Warn("RescheduleReservation: reservation=%s not found", req.ReservationID)
			return nil, ErrReservationNotFound
		case errors.Is(err, reservations.ErrUpstream):
			uc.logger.Error("RescheduleReservation: lookup failed for reservation=%s: %v", req.ReservationID, err)
			return nil, fmt.Errorf("%w: lookup failed: %v", ErrUpstream, err)
		default:
			return nil, fmt.Errorf("%w: lookup failed: %v", ErrInternal, err)
		}
	}

	// 3. Normalize the target slot
	slot, err := uc.normalizer.ToInterval(req.Date, req.Time)
	if err != nil {
		uc.logger.Warn("RescheduleReservation: normalization failed for reservation=%s: %v", req.ReservationID, err)
		return nil, mapScheduleError(err)
	}

	// 4. Serialize against concurrent bookings of the target slot
	key := slot.Key()
	uc.locker.Lock(key)
	defer uc.locker.Unlock(key)

	// 5. Conflict check, ignoring the event being moved
	events, err := uc.gateway.ListEvents(ctx, slot.Start, slot.End)
	if err != nil {
		uc.logger.Error("RescheduleReservation: conflict check failed for slot=%s: %v", key, err)
		return nil, fmt.Errorf("%w: conflict check failed: %v", ErrUpstream, err)
	}
	if slotTakenByOther(events, slot, event.ID) {
		uc.logger.Warn("RescheduleReservation: slot=%s already booked, rejecting reservation=%s", key, req.ReservationID)
		uc.metrics.IncSlotConflict()
		return nil, ErrSlotOccupied
	}

	// 6. Recompute the price for the new hour and rewrite only the lines
	// that change
	price := uc.pricing.PriceFor(slot)
	description := domain.RewritePrice(event.Description, price)

	location := event.Location
	if newChannel != nil {
		current, _ := domain.ChannelFromDescription(event.Description)
		if *newChannel != current {
			description = domain.RewriteChannel(description, *newChannel)
		}
		location = uc.locationInPerson
		if *newChannel == domain.ChannelOnline {
			location = uc.locationOnline
		}
	}

	// 7. Move the event
	updated, err := uc.gateway.UpdateEvent(ctx, event.ID, &googlecalendar.EventInput{
		Summary:     event.Summary,
		Description: description,
		Location:    location,
		Start:       slot.Start,
		End:         slot.End,
	})
	if err != nil {
		uc.logger.Error("RescheduleReservation: update failed for reservation=%s event=%s: %v", req.ReservationID, event.ID, err)
		return nil, fmt.Errorf("%w: update failed: %v", ErrUpstream, err)
	}

	// 8. Refresh the index entry, best effort
	if uc.index != nil {
		if err := uc.index.Put(ctx, strings.TrimSpace(req.ReservationID), updated.ID, slot.Start); err != nil {
			uc.logger.Warn("RescheduleReservation: index write failed for reservation=%s: %v", req.ReservationID, err)
		}
	}

	uc.metrics.IncReservationMoved()
	uc.logger.Info("RescheduleReservation: reservation=%s moved to slot=%s, price=%.2f",
		req.ReservationID, key, price)

	return &Response{
		ReservationID: strings.TrimSpace(req.ReservationID),
		EventID:       updated.ID,
		Date:          slot.Date(),
		Time:          slot.Time(),
		Price:         price,
		Location:      location,
		MeetLink:      updated.MeetLink,
	}, nil
}
