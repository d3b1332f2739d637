package create_event

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saudesim/agenda-service/internal/api/handlers"
	createReservation "github.com/saudesim/agenda-service/internal/usecase/create_reservation"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	res *createReservation.Response
	err error
	req *createReservation.Request
}

func (u *fakeUseCase) Execute(_ context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	u.req = req
	return u.res, u.err
}

func post(t *testing.T, h *Handler, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/create-event", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	validBody := CreateEventRequest{
		ResID:   "res-1001",
		Nome:    "Maria Silva",
		Fone:    "+55 11 91234-5678",
		Email:   "maria@example.com",
		Data:    "15/10/2025",
		Hora:    "10:00",
		TipoAtd: "online",
		Pagto:   "pix",
		Libras:  "não",
	}

	t.Run("Success", func(t *testing.T) {
		useCase := &fakeUseCase{res: &createReservation.Response{
			ReservationID: "res-1001",
			EventID:       "ev-100",
			Date:          "15/10/2025",
			Time:          "10:00",
			Price:         150.0,
			Location:      "Atendimento online",
			MeetLink:      "https://meet.example/abc",
		}}
		h := NewHandler(useCase, nopLogger{})

		rec := post(t, h, validBody)

		assert.Equal(t, http.StatusOK, rec.Code)

		var res CreateEventResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, "created", res.Status)
		assert.Equal(t, "res-1001", res.ResID)
		assert.Equal(t, "ev-100", res.EventID)
		assert.Equal(t, 150.0, res.Valor)
		assert.Equal(t, "https://meet.example/abc", res.MeetLink)

		require.NotNil(t, useCase.req)
		assert.False(t, useCase.req.Libras)
	})

	t.Run("Libras Flag Parsed From Wire Value", func(t *testing.T) {
		useCase := &fakeUseCase{res: &createReservation.Response{}}
		h := NewHandler(useCase, nopLogger{})

		body := validBody
		body.Libras = "Sim"
		post(t, h, body)

		require.NotNil(t, useCase.req)
		assert.True(t, useCase.req.Libras)
	})

	t.Run("Conflict Maps To 409", func(t *testing.T) {
		h := NewHandler(&fakeUseCase{err: createReservation.ErrSlotOccupied}, nopLogger{})

		rec := post(t, h, validBody)

		assert.Equal(t, http.StatusConflict, rec.Code)

		var body handlers.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, handlers.StatusConflict, body.Status)
	})

	t.Run("Invalid Date Maps To 400", func(t *testing.T) {
		h := NewHandler(&fakeUseCase{err: createReservation.ErrInvalidDate}, nopLogger{})

		rec := post(t, h, validBody)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var body handlers.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, handlers.StatusValidationError, body.Status)
	})

	t.Run("Upstream Maps To 502", func(t *testing.T) {
		h := NewHandler(&fakeUseCase{err: createReservation.ErrUpstream}, nopLogger{})

		rec := post(t, h, validBody)

		assert.Equal(t, http.StatusBadGateway, rec.Code)

		var body handlers.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, handlers.StatusUpstreamError, body.Status)
	})

	t.Run("Malformed Body Maps To 400", func(t *testing.T) {
		h := NewHandler(&fakeUseCase{}, nopLogger{})

		req := httptest.NewRequest(http.MethodPost, "/create-event", bytes.NewReader([]byte("{not json")))
		rec := httptest.NewRecorder()
		h.Handle(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
