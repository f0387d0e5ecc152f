package availability_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rxdxy/grooming-booking/internal/domain"
	getAvailableSlots "github.com/Rxdxy/grooming-booking/internal/usecase/get_available_slots"
)

type fakeUseCase struct {
	called bool
	resp   *getAvailableSlots.Response
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.called = true
	if f.resp != nil {
		return f.resp, nil
	}
	return &getAvailableSlots.Response{Start: req.Start, End: req.End, Slots: []domain.Interval{}}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, h *Handler, url string) (*httptest.ResponseRecorder, SlotsResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	var body SlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestHandle_ValidRange(t *testing.T) {
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{
		resp: &getAvailableSlots.Response{
			Slots: []domain.Interval{{Start: start, End: start.Add(time.Hour)}},
		},
	}
	h := NewHandler(uc, time.UTC, nopLogger{})

	rec, body := doRequest(t, h, "/api/v1/availability/slots?start=2026-09-01T00:00:00Z&end=2026-09-02T00:00:00Z")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, uc.called)
	require.Len(t, body.Slots, 1)
	assert.Equal(t, "Available", body.Slots[0].Title)
	assert.Equal(t, start, body.Slots[0].Start)
}

func TestHandle_MissingParamsYieldEmptyFeed(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, time.UTC, nopLogger{})

	// Виджет дергает ленту и с пустыми параметрами: это не ошибка
	rec, body := doRequest(t, h, "/api/v1/availability/slots")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, body.Slots)
	assert.False(t, uc.called)
}

func TestHandle_MalformedParamsYieldEmptyFeed(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, time.UTC, nopLogger{})

	rec, body := doRequest(t, h, "/api/v1/availability/slots?start=not-a-date&end=2026-09-02T00:00:00Z")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, body.Slots)
	assert.False(t, uc.called)
}

func TestHandle_NaiveTimesInterpretedInBusinessTimezone(t *testing.T) {
	loc, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)

	var captured *getAvailableSlots.Request
	uc := &capturingUseCase{captured: &captured}
	h := NewHandler(uc, loc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability/slots?start=2026-09-01T00:00&end=2026-09-02T00:00", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, captured)
	assert.Equal(t, loc, captured.Start.Location())
	assert.Equal(t, 0, captured.Start.Hour())
}

type capturingUseCase struct {
	captured **getAvailableSlots.Request
}

func (c *capturingUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	*c.captured = req
	return &getAvailableSlots.Response{Start: req.Start, End: req.End, Slots: []domain.Interval{}}, nil
}
