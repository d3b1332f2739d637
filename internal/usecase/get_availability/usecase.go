package get_availability

import (
	"context"
	"fmt"
	"strings"
)

// UseCase computes the free hourly slots of a civil day. The agenda runs
// over a fixed range of start hours; a slot is free when no event starts
// inside it. Read-only: repeating the query never changes the answer.
type UseCase struct {
	gateway    CalendarGateway
	normalizer ScheduleNormalizer
	firstHour  int // first bookable start hour, inclusive
	lastHour   int // last bookable start hour, inclusive
	logger     Logger
}

// NewUseCase creates the availability use case.
func NewUseCase(gateway CalendarGateway, normalizer ScheduleNormalizer, firstHour, lastHour int, logger Logger) *UseCase {
	return &UseCase{
		gateway:    gateway,
		normalizer: normalizer,
		firstHour:  firstHour,
		lastHour:   lastHour,
		logger:     logger,
	}
}

// Execute lists the events of the requested day and returns the agenda
// hours no event starts in.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: date=%s", req.Date)

	// 1. Validate and resolve the civil day window
	if strings.TrimSpace(req.Date) == "" {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	dayStart, err := uc.normalizer.StartOfDay(req.Date)
	if err != nil {
		uc.logger.Warn("GetAvailability: invalid date %q: %v", req.Date, err)
		return nil, mapScheduleError(err)
	}
	dayEnd, err := uc.normalizer.EndOfDay(req.Date)
	if err != nil {
		return nil, mapScheduleError(err)
	}

	// 2. Collect the start hours already taken
	events, err := uc.gateway.ListEvents(ctx, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("GetAvailability: event list failed for date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	occupied := make(map[int]bool, len(events))
	for _, event := range events {
		occupied[event.Start.In(uc.normalizer.Location()).Hour()] = true
	}

	// 3. The free slots are the complement within the agenda hours
	available := make([]string, 0, uc.lastHour-uc.firstHour+1)
	for hour := uc.firstHour; hour <= uc.lastHour; hour++ {
		if !occupied[hour] {
			available = append(available, fmt.Sprintf("%02d:00", hour))
		}
	}

	uc.logger.Info("GetAvailability: date=%s has %d free of %d agenda slots",
		req.Date, len(available), uc.lastHour-uc.firstHour+1)

	return &Response{
		Date:           strings.TrimSpace(req.Date),
		AvailableTimes: available,
	}, nil
}
