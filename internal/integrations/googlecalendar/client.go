package googlecalendar

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/saudesim/agenda-service/internal/config"
)

const retryBackoff = 200 * time.Millisecond

// Client is the Calendar Gateway: the only component in the service that
// performs I/O against the calendar store. The calendar is the system of
// record, so the client never caches events; every decision upstream is
// made on a fresh read.
type Client struct {
	svc         *calendar.Service
	calendarID  string
	timezone    string
	timeout     time.Duration
	pageSize    int64
	listRetries int
	log         Logger
}

// NewClient builds the gateway from service-account credentials. Fails
// fast when credentials cannot be loaded; a service without its calendar
// has nothing to do.
func NewClient(ctx context.Context, cfg config.CalendarConfig, log Logger) (*Client, error) {
	svc, err := calendar.NewService(ctx,
		option.WithCredentialsFile(cfg.CredentialsFile),
		option.WithScopes(calendar.CalendarScope),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: create calendar service: %v", ErrInternal, err)
	}

	return &Client{
		svc:         svc,
		calendarID:  cfg.CalendarID,
		timezone:    cfg.Timezone,
		timeout:     time.Duration(cfg.TimeoutSeconds) * time.Second,
		pageSize:    int64(cfg.ListPageSize),
		listRetries: cfg.ListRetries,
		log:         log,
	}, nil
}

// ListEvents returns the non-recurring-expanded events whose start falls
// within [timeMin, timeMax], ordered by start time and bounded to the
// configured page size. Reads are idempotent, so transient failures are
// retried with backoff.
func (c *Client) ListEvents(ctx context.Context, timeMin, timeMax time.Time) ([]*Event, error) {
	var events *calendar.Events

	err := c.withReadRetry(ctx, "list-events", func(callCtx context.Context) error {
		var err error
		events, err = c.svc.Events.List(c.calendarID).
			TimeMin(timeMin.Format(time.RFC3339)).
			TimeMax(timeMax.Format(time.RFC3339)).
			SingleEvents(true).
			OrderBy("startTime").
			MaxResults(c.pageSize).
			Context(callCtx).
			Do()
		return err
	})
	if err != nil {
		c.log.Error("ListEvents: calendar=%s window=[%s, %s]: %v",
			c.calendarID, timeMin.Format(time.RFC3339), timeMax.Format(time.RFC3339), err)
		return nil, fmt.Errorf("%w: list events: %v", ErrUpstream, err)
	}

	result := make([]*Event, 0, len(events.Items))
	for _, item := range events.Items {
		ev, err := fromAPIEvent(item)
		if err != nil {
			c.log.Warn("ListEvents: skipping event id=%s with unparsable time: %v", item.Id, err)
			continue
		}
		result = append(result, ev)
	}

	return result, nil
}

// GetEvent fetches a single event by its calendar-native id
func (c *Client) GetEvent(ctx context.Context, eventID string) (*Event, error) {
	var item *calendar.Event

	err := c.withReadRetry(ctx, "get-event", func(callCtx context.Context) error {
		var err error
		item, err = c.svc.Events.Get(c.calendarID, eventID).Context(callCtx).Do()
		return err
	})
	if err != nil {
		if isNotFound(err) {
			return nil, ErrEventNotFound
		}
		c.log.Error("GetEvent: event=%s: %v", eventID, err)
		return nil, fmt.Errorf("%w: get event: %v", ErrUpstream, err)
	}

	ev, err := fromAPIEvent(item)
	if err != nil {
		return nil, fmt.Errorf("%w: get event: %v", ErrUpstream, err)
	}
	return ev, nil
}

// InsertEvent creates a new event. Writes are never retried here: a retried
// insert after an ambiguous failure could book the same slot twice.
func (c *Client) InsertEvent(ctx context.Context, input *EventInput) (*Event, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	item, err := c.svc.Events.Insert(c.calendarID, c.toAPIEvent(input)).Context(callCtx).Do()
	if err != nil {
		c.log.Error("InsertEvent: summary=%q start=%s: %v",
			input.Summary, input.Start.Format(time.RFC3339), err)
		return nil, fmt.Errorf("%w: insert event: %v", ErrUpstream, err)
	}

	ev, err := fromAPIEvent(item)
	if err != nil {
		return nil, fmt.Errorf("%w: insert event: %v", ErrUpstream, err)
	}

	c.log.Info("InsertEvent: created event id=%s start=%s", ev.ID, ev.Start.Format(time.RFC3339))
	return ev, nil
}

// UpdateEvent overwrites an existing event's mapped fields
func (c *Client) UpdateEvent(ctx context.Context, eventID string, input *EventInput) (*Event, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	item, err := c.svc.Events.Update(c.calendarID, eventID, c.toAPIEvent(input)).Context(callCtx).Do()
	if err != nil {
		if isNotFound(err) {
			return nil, ErrEventNotFound
		}
		c.log.Error("UpdateEvent: event=%s: %v", eventID, err)
		return nil, fmt.Errorf("%w: update event: %v", ErrUpstream, err)
	}

	ev, err := fromAPIEvent(item)
	if err != nil {
		return nil, fmt.Errorf("%w: update event: %v", ErrUpstream, err)
	}

	c.log.Info("UpdateEvent: updated event id=%s start=%s", ev.ID, ev.Start.Format(time.RFC3339))
	return ev, nil
}

// DeleteEvent removes an event. Not retried on failure.
func (c *Client) DeleteEvent(ctx context.Context, eventID string) error {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	err := c.svc.Events.Delete(c.calendarID, eventID).Context(callCtx).Do()
	if err != nil {
		if isNotFound(err) {
			return ErrEventNotFound
		}
		c.log.Error("DeleteEvent: event=%s: %v", eventID, err)
		return fmt.Errorf("%w: delete event: %v", ErrUpstream, err)
	}

	c.log.Info("DeleteEvent: deleted event id=%s", eventID)
	return nil
}

// withReadRetry runs an idempotent read with a per-call timeout, retrying
// transient failures up to the configured count. Not-found responses are
// final and returned immediately.
func (c *Client) withReadRetry(ctx context.Context, operation string, call func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt <= c.listRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(attempt) * retryBackoff):
			}
			c.log.Warn("%s: retry %d/%d after error: %v", operation, attempt, c.listRetries, lastErr)
		}

		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		err := call(callCtx)
		cancel()

		if err == nil {
			return nil
		}
		if isNotFound(err) {
			return err
		}
		lastErr = err
	}

	return lastErr
}

func (c *Client) toAPIEvent(input *EventInput) *calendar.Event {
	ev := &calendar.Event{
		Summary:     input.Summary,
		Description: input.Description,
		Location:    input.Location,
		Start: &calendar.EventDateTime{
			DateTime: input.Start.Format(time.RFC3339),
			TimeZone: c.timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: input.End.Format(time.RFC3339),
			TimeZone: c.timezone,
		},
	}

	if input.AttendeeEmail != "" {
		ev.Attendees = []*calendar.EventAttendee{{Email: input.AttendeeEmail}}
	}

	return ev
}

func fromAPIEvent(item *calendar.Event) (*Event, error) {
	start, err := parseEventTime(item.Start)
	if err != nil {
		return nil, fmt.Errorf("parse start of event %s: %w", item.Id, err)
	}
	end, err := parseEventTime(item.End)
	if err != nil {
		return nil, fmt.Errorf("parse end of event %s: %w", item.Id, err)
	}

	return &Event{
		ID:          item.Id,
		Summary:     item.Summary,
		Description: item.Description,
		Location:    item.Location,
		Start:       start,
		End:         end,
		MeetLink:    item.HangoutLink,
	}, nil
}

func parseEventTime(edt *calendar.EventDateTime) (time.Time, error) {
	if edt == nil || edt.DateTime == "" {
		// All-day events carry only a date; they are not appointments
		// this service created, so their exact instant does not matter.
		if edt != nil && edt.Date != "" {
			return time.Parse("2006-01-02", edt.Date)
		}
		return time.Time{}, fmt.Errorf("event has no start/end datetime")
	}
	return time.Parse(time.RFC3339, edt.DateTime)
}

func isNotFound(err error) bool {
	if apiErr, ok := err.(*googleapi.Error); ok {
		return apiErr.Code == 404 || apiErr.Code == 410
	}
	return false
}
