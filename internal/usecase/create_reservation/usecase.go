package create_reservation

import (
	"context"
	"fmt"
	"strings"

	"github.com/saudesim/agenda-service/internal/domain"
	"github.com/saudesim/agenda-service/internal/integrations/googlecalendar"
)

// UseCase books a one-hour appointment slot on the shared calendar.
type UseCase struct {
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

// NewUseCase creates the booking use case. index may be nil.
func NewUseCase(
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

// Execute validates the request, checks the slot under the slot lock and
// inserts the backing calendar event. A gateway failure during the conflict
// check is never treated as a free slot.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: reservation=%s, date=%s, time=%s, channel=%s",
		req.ReservationID, req.Date, req.Time, req.Channel)

	// 1. Validate the raw fields
	channel, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Normalize date and time into a one-hour slot
	slot, err := uc.normalizer.ToInterval(req.Date, req.Time)
	if err != nil {
		uc.logger.Warn("CreateReservation: normalization failed for reservation=%s: %v", req.ReservationID, err)
		return nil, mapScheduleError(err)
	}

	// 3. Serialize against concurrent bookings of the same slot
	key := slot.Key()
	uc.locker.Lock(key)
	defer uc.locker.Unlock(key)

	// 4. Conflict check: any event starting inside the slot occupies it
	events, err := uc.gateway.ListEvents(ctx, slot.Start, slot.End)
	if err != nil {
		uc.logger.Error("CreateReservation: conflict check failed for slot=%s: %v", key, err)
		return nil, fmt.Errorf("%w: conflict check failed: %v", ErrUpstream, err)
	}
	if slotTaken(events, slot) {
		uc.logger.Warn("CreateReservation: slot=%s already booked, rejecting reservation=%s", key, req.ReservationID)
		uc.metrics.IncSlotConflict()
		return nil, ErrSlotOccupied
	}

	// 5. Price and location follow from the slot hour and the channel
	price := uc.pricing.PriceFor(slot)
	location := uc.locationInPerson
	if channel == domain.ChannelOnline {
		location = uc.locationOnline
	}

	reservation := &domain.Reservation{
		ReservationID: strings.TrimSpace(req.ReservationID),
		PatientName:   strings.TrimSpace(req.PatientName),
		Phone:         strings.TrimSpace(req.Phone),
		Email:         strings.TrimSpace(req.Email),
		Channel:       channel,
		PaymentMethod: strings.TrimSpace(req.PaymentMethod),
		Libras:        req.Libras,
		Price:         price,
		Location:      location,
		Notes:         req.Notes,
		Slot:          slot,
		Status:        domain.StatusScheduled,
	}

	// 6. Insert the event; the marker in the description is what makes the
	// reservation findable later
	event, err := uc.gateway.InsertEvent(ctx, &googlecalendar.EventInput{
		Summary:       domain.EventSummaryPrefix + reservation.PatientName,
		Description:   domain.BuildDescription(reservation),
		Location:      location,
		Start:         slot.Start,
		End:           slot.End,
		AttendeeEmail: reservation.Email,
	})
	if err != nil {
		uc.logger.Error("CreateReservation: insert failed for reservation=%s slot=%s: %v", reservation.ReservationID, key, err)
		return nil, fmt.Errorf("%w: insert failed: %v", ErrUpstream, err)
	}

	// 7. Record the id->event mapping, best effort: the marker scan still
	// finds the reservation if this write is lost
	if uc.index != nil {
		if err := uc.index.Put(ctx, reservation.ReservationID, event.ID, slot.Start); err != nil {
			uc.logger.Warn("CreateReservation: index write failed for reservation=%s: %v", reservation.ReservationID, err)
		}
	}

	uc.metrics.IncReservationCreated()
	uc.logger.Info("CreateReservation: reservation=%s booked, event=%s, slot=%s, price=%.2f",
		reservation.ReservationID, event.ID, key, price)

	return &Response{
		ReservationID: reservation.ReservationID,
		EventID:       event.ID,
		Date:          slot.Date(),
		Time:          slot.Time(),
		Price:         price,
		Location:      location,
		MeetLink:      event.MeetLink,
	}, nil
}
