package create_reservation

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
	"github.com/saudesim/agenda-service/pkg/ptr"
	"github.com/saudesim/agenda-service/pkg/slotlock"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeMetrics struct {
	created   int
	conflicts int
}

func (m *fakeMetrics) IncReservationCreated() { m.created++ }
func (m *fakeMetrics) IncSlotConflict()       { m.conflicts++ }

type fakeGateway struct {
	events    []*googlecalendar.Event
	listErr   error
	insertErr error
	inserted  []*googlecalendar.EventInput
}

func (g *fakeGateway) ListEvents(_ context.Context, _, _ time.Time) ([]*googlecalendar.Event, error) {
	if g.listErr != nil {
		return nil, g.listErr
	}
	return g.events, nil
}

func (g *fakeGateway) InsertEvent(_ context.Context, input *googlecalendar.EventInput) (*googlecalendar.Event, error) {
	if g.insertErr != nil {
		return nil, g.insertErr
	}
	g.inserted = append(g.inserted, input)
	return &googlecalendar.Event{
		ID:          "ev-100",
		Summary:     input.Summary,
		Description: input.Description,
		Location:    input.Location,
		Start:       input.Start,
		End:         input.End,
		MeetLink:    "https://meet.example/abc",
	}, nil
}

type fakeIndex struct {
	putErr error
	puts   int
}

func (i *fakeIndex) Put(_ context.Context, _, _ string, _ time.Time) error {
	i.puts++
	return i.putErr
}

func newTestUseCase(t *testing.T, gateway *fakeGateway, index ReservationIndex) (*UseCase, *fakeMetrics) {
	t.Helper()

	normalizer, err := schedule.NewNormalizer("America/Sao_Paulo")
	require.NoError(t, err)

	metrics := &fakeMetrics{}
	uc := NewUseCase(
		gateway,
		index,
		normalizer,
		pricing.NewPolicy(150.0, 200.0, 18),
		slotlock.New(),
		metrics,
		"Clínica SaúdeSim - Av. Paulista, 1000",
		"Atendimento online",
		nopLogger{},
	)
	return uc, metrics
}

func validRequest() *Request {
	return &Request{
		ReservationID: "res-1001",
		PatientName:   "Maria Silva",
		Phone:         "+55 11 91234-5678",
		Email:         "maria@example.com",
		Date:          "15/10/2025",
		Time:          "10:00",
		Channel:       "online",
		PaymentMethod: "pix",
	}
}

func eventAt(t *testing.T, date, timeStr string) *googlecalendar.Event {
	t.Helper()
	n, err := schedule.NewNormalizer("America/Sao_Paulo")
	require.NoError(t, err)
	slot, err := n.ToInterval(date, timeStr)
	require.NoError(t, err)
	return &googlecalendar.Event{ID: "ev-other", Start: slot.Start, End: slot.End}
}

func TestExecute(t *testing.T) {
	t.Run("Books Free Slot", func(t *testing.T) {
		gateway := &fakeGateway{}
		uc, metrics := newTestUseCase(t, gateway, nil)

		res, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)

		assert.Equal(t, "res-1001", res.ReservationID)
		assert.Equal(t, "ev-100", res.EventID)
		assert.Equal(t, "15/10/2025", res.Date)
		assert.Equal(t, "10:00", res.Time)
		assert.Equal(t, 150.0, res.Price)
		assert.Equal(t, "Atendimento online", res.Location)
		assert.Equal(t, "https://meet.example/abc", res.MeetLink)
		assert.Equal(t, 1, metrics.created)

		require.Len(t, gateway.inserted, 1)
		inserted := gateway.inserted[0]
		assert.Equal(t, "Consulta Clínica SaúdeSim - Maria Silva", inserted.Summary)
		assert.True(t, domain.HasMarker(inserted.Description, "res-1001"), "marker must be embedded")
		assert.Equal(t, time.Hour, inserted.End.Sub(inserted.Start))
		assert.Equal(t, "maria@example.com", inserted.AttendeeEmail)
	})

	t.Run("Evening Slot Gets Evening Price", func(t *testing.T) {
		gateway := &fakeGateway{}
		uc, _ := newTestUseCase(t, gateway, nil)

		req := validRequest()
		req.Time = "19"

		res, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, 200.0, res.Price)
		assert.Equal(t, "19:00", res.Time)
	})

	t.Run("In Person Channel Gets Clinic Address", func(t *testing.T) {
		gateway := &fakeGateway{}
		uc, _ := newTestUseCase(t, gateway, nil)

		req := validRequest()
		req.Channel = "presencial"

		res, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, "Clínica SaúdeSim - Av. Paulista, 1000", res.Location)
	})

	t.Run("Notes Are Embedded In The Description", func(t *testing.T) {
		gateway := &fakeGateway{}
		uc, _ := newTestUseCase(t, gateway, nil)

		req := validRequest()
		req.Notes = ptr.Ptr("paciente prefere manhã")

		_, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)

		require.Len(t, gateway.inserted, 1)
		assert.Contains(t, gateway.inserted[0].Description, "Obs: paciente prefere manhã")
	})

	t.Run("Occupied Slot Is Rejected", func(t *testing.T) {
		gateway := &fakeGateway{events: []*googlecalendar.Event{eventAt(t, "15/10/2025", "10:00")}}
		uc, metrics := newTestUseCase(t, gateway, nil)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSlotOccupied)
		assert.Empty(t, gateway.inserted, "no event may be created on conflict")
		assert.Equal(t, 1, metrics.conflicts)
	})

	t.Run("Event Spilling Into The Hour Does Not Conflict", func(t *testing.T) {
		// 09:30-10:30 overlaps the 10:00 slot but does not start inside it
		gateway := &fakeGateway{events: []*googlecalendar.Event{eventAt(t, "15/10/2025", "9:30")}}
		uc, _ := newTestUseCase(t, gateway, nil)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.NoError(t, err)
	})

	t.Run("Gateway Failure During Check Is Not A Free Slot", func(t *testing.T) {
		gateway := &fakeGateway{listErr: errors.New("boom")}
		uc, _ := newTestUseCase(t, gateway, nil)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrUpstream)
		assert.Empty(t, gateway.inserted)
	})

	t.Run("Insert Failure Propagates As Upstream", func(t *testing.T) {
		gateway := &fakeGateway{insertErr: errors.New("boom")}
		uc, metrics := newTestUseCase(t, gateway, nil)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrUpstream)
		assert.Zero(t, metrics.created)
	})

	t.Run("Index Write Failure Does Not Fail The Booking", func(t *testing.T) {
		gateway := &fakeGateway{}
		index := &fakeIndex{putErr: errors.New("db down")}
		uc, _ := newTestUseCase(t, gateway, index)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.NoError(t, err)
		assert.Equal(t, 1, index.puts)
	})

	t.Run("Missing Name Is Rejected", func(t *testing.T) {
		uc, _ := newTestUseCase(t, &fakeGateway{}, nil)

		req := validRequest()
		req.PatientName = "  "

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Invalid Date Is Rejected", func(t *testing.T) {
		uc, _ := newTestUseCase(t, &fakeGateway{}, nil)

		req := validRequest()
		req.Date = "31/02/2025"

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("Invalid Time Is Rejected", func(t *testing.T) {
		uc, _ := newTestUseCase(t, &fakeGateway{}, nil)

		req := validRequest()
		req.Time = "10h30"

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidTime)
	})

	t.Run("Unknown Channel Is Rejected", func(t *testing.T) {
		uc, _ := newTestUseCase(t, &fakeGateway{}, nil)

		req := validRequest()
		req.Channel = "telefone"

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
