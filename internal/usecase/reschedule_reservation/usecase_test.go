package reschedule_reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saudesim/agenda-service/internal/domain"
	"github.com/saudesim/agenda-service/internal/integrations/googlecalendar"
	"github.com/saudesim/agenda-service/internal/pricing"
	"github.com/saudesim/agenda-service/internal/schedule"
	"github.com/saudesim/agenda-service/internal/service/reservations"
	"github.com/saudesim/agenda-service/pkg/ptr"
	"github.com/saudesim/agenda-service/pkg/slotlock"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeMetrics struct {
	moved     int
	conflicts int
}

func (m *fakeMetrics) IncReservationMoved() { m.moved++ }
func (m *fakeMetrics) IncSlotConflict()     { m.conflicts++ }

type fakeFinder struct {
	event *googlecalendar.Event
	err   error
}

func (f *fakeFinder) FindByReservationID(_ context.Context, _ string) (*googlecalendar.Event, error) {
	return f.event, f.err
}

type fakeGateway struct {
	events    []*googlecalendar.Event
	listErr   error
	updateErr error
	updatedID string
	updated   *googlecalendar.EventInput
}

func (g *fakeGateway) ListEvents(_ context.Context, _, _ time.Time) ([]*googlecalendar.Event, error) {
	if g.listErr != nil {
		return nil, g.listErr
	}
	return g.events, nil
}

func (g *fakeGateway) UpdateEvent(_ context.Context, eventID string, input *googlecalendar.EventInput) (*googlecalendar.Event, error) {
	if g.updateErr != nil {
		return nil, g.updateErr
	}
	g.updatedID = eventID
	g.updated = input
	return &googlecalendar.Event{
		ID:          eventID,
		Summary:     input.Summary,
		Description: input.Description,
		Location:    input.Location,
		Start:       input.Start,
		End:         input.End,
	}, nil
}

func mustNormalizer(t *testing.T) *schedule.Normalizer {
	t.Helper()
	n, err := schedule.NewNormalizer("America/Sao_Paulo")
	require.NoError(t, err)
	return n
}

// existingEvent builds the calendar event of an online reservation booked
// at 10:00 for the base price.
func existingEvent(t *testing.T) *googlecalendar.Event {
	t.Helper()

	slot, err := mustNormalizer(t).ToInterval("15/10/2025", "10:00")
	require.NoError(t, err)

	description := domain.BuildDescription(&domain.Reservation{
		ReservationID: "res-1001",
		PatientName:   "Maria Silva",
		Phone:         "+55 11 91234-5678",
		Email:         "maria@example.com",
		Channel:       domain.ChannelOnline,
		PaymentMethod: "pix",
		Price:         150.0,
		Slot:          slot,
	})

	return &googlecalendar.Event{
		ID:          "ev-100",
		Summary:     "Consulta Clínica SaúdeSim - Maria Silva",
		Description: description,
		Location:    "Atendimento online",
		Start:       slot.Start,
		End:         slot.End,
	}
}

func newTestUseCase(t *testing.T, finder ReservationFinder, gateway *fakeGateway) (*UseCase, *fakeMetrics) {
	t.Helper()

	metrics := &fakeMetrics{}
	uc := NewUseCase(
		finder,
		gateway,
		nil,
		mustNormalizer(t),
		pricing.NewPolicy(150.0, 200.0, 18),
		slotlock.New(),
		metrics,
		"Clínica SaúdeSim - Av. Paulista, 1000",
		"Atendimento online",
		nopLogger{},
	)
	return uc, metrics
}

func TestExecute(t *testing.T) {
	t.Run("Moves To Evening And Raises Price", func(t *testing.T) {
		gateway := &fakeGateway{}
		uc, metrics := newTestUseCase(t, &fakeFinder{event: existingEvent(t)}, gateway)

		res, err := uc.Execute(context.Background(), &Request{
			ReservationID: "res-1001",
			Date:          "15/10/2025",
			Time:          "19:00",
		})
		require.NoError(t, err)

		assert.Equal(t, "19:00", res.Time)
		assert.Equal(t, 200.0, res.Price)
		assert.Equal(t, 1, metrics.moved)

		require.NotNil(t, gateway.updated)
		assert.Equal(t, "ev-100", gateway.updatedID)
		assert.Contains(t, gateway.updated.Description, "Valor: R$ 200.00")
		assert.NotContains(t, gateway.updated.Description, "Valor: R$ 150.00")
		assert.True(t, domain.HasMarker(gateway.updated.Description, "res-1001"), "marker must survive the move")
		assert.Contains(t, gateway.updated.Description, "Paciente: Maria Silva")
		assert.Equal(t, time.Hour, gateway.updated.End.Sub(gateway.updated.Start))
	})

	t.Run("Own Event Does Not Conflict With Itself", func(t *testing.T) {
		event := existingEvent(t)
		// The event being moved is the only occupant of its target slot
		gateway := &fakeGateway{events: []*googlecalendar.Event{event}}
		uc, _ := newTestUseCase(t, &fakeFinder{event: event}, gateway)

		_, err := uc.Execute(context.Background(), &Request{
			ReservationID: "res-1001",
			Date:          "15/10/2025",
			Time:          "10:00",
		})
		assert.NoError(t, err)
	})

	t.Run("Another Event In Target Slot Conflicts", func(t *testing.T) {
		slot, err := mustNormalizer(t).ToInterval("15/10/2025", "19:00")
		require.NoError(t, err)
		other := &googlecalendar.Event{ID: "ev-999", Start: slot.Start, End: slot.End}

		gateway := &fakeGateway{events: []*googlecalendar.Event{other}}
		uc, metrics := newTestUseCase(t, &fakeFinder{event: existingEvent(t)}, gateway)

		_, err = uc.Execute(context.Background(), &Request{
			ReservationID: "res-1001",
			Date:          "15/10/2025",
			Time:          "19:00",
		})
		assert.ErrorIs(t, err, ErrSlotOccupied)
		assert.Nil(t, gateway.updated, "event must keep its previous slot")
		assert.Equal(t, 1, metrics.conflicts)
	})

	t.Run("Channel Change Rewrites Description And Location", func(t *testing.T) {
		gateway := &fakeGateway{}
		uc, _ := newTestUseCase(t, &fakeFinder{event: existingEvent(t)}, gateway)

		res, err := uc.Execute(context.Background(), &Request{
			ReservationID: "res-1001",
			Date:          "15/10/2025",
			Time:          "11:00",
			Channel:       ptr.Ptr("presencial"),
		})
		require.NoError(t, err)

		assert.Equal(t, "Clínica SaúdeSim - Av. Paulista, 1000", res.Location)
		assert.Contains(t, gateway.updated.Description, "Atendimento: presencial")
	})

	t.Run("Reservation Not Found", func(t *testing.T) {
		uc, _ := newTestUseCase(t, &fakeFinder{err: reservations.ErrReservationNotFound}, &fakeGateway{})

		_, err := uc.Execute(context.Background(), &Request{
			ReservationID: "res-miss",
			Date:          "15/10/2025",
			Time:          "11:00",
		})
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})

	t.Run("Lookup Upstream Failure Propagates", func(t *testing.T) {
		uc, _ := newTestUseCase(t, &fakeFinder{err: reservations.ErrUpstream}, &fakeGateway{})

		_, err := uc.Execute(context.Background(), &Request{
			ReservationID: "res-1001",
			Date:          "15/10/2025",
			Time:          "11:00",
		})
		assert.ErrorIs(t, err, ErrUpstream)
	})

	t.Run("Conflict Check Failure Keeps Event In Place", func(t *testing.T) {
		gateway := &fakeGateway{listErr: errors.New("boom")}
		uc, _ := newTestUseCase(t, &fakeFinder{event: existingEvent(t)}, gateway)

		_, err := uc.Execute(context.Background(), &Request{
			ReservationID: "res-1001",
			Date:          "15/10/2025",
			Time:          "19:00",
		})
		assert.ErrorIs(t, err, ErrUpstream)
		assert.Nil(t, gateway.updated)
	})

	t.Run("Invalid New Date", func(t *testing.T) {
		uc, _ := newTestUseCase(t, &fakeFinder{event: existingEvent(t)}, &fakeGateway{})

		_, err := uc.Execute(context.Background(), &Request{
			ReservationID: "res-1001",
			Date:          "31/02/2025",
			Time:          "11:00",
		})
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("Missing Reservation ID", func(t *testing.T) {
		uc, _ := newTestUseCase(t, &fakeFinder{event: existingEvent(t)}, &fakeGateway{})

		_, err := uc.Execute(context.Background(), &Request{
			Date: "15/10/2025",
			Time: "11:00",
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
