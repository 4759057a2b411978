package create_reservation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeUseCase struct {
	lastReq *createReservation.Request
	resp    *createReservation.Response
	err     error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func TestHandle_Created(t *testing.T) {
	start := time.Date(2027, 5, 1, 10, 0, 0, 0, time.UTC)
	useCase := &fakeUseCase{resp: &createReservation.Response{
		GlobalID:     uuid.New(),
		CourtName:    "Court 1",
		GameTypeName: "Singles",
		StartTime:    start,
		EndTime:      start.Add(2 * time.Hour),
		Phone:        "777123456",
		CustomerName: "Emil Doktor",
		Price:        12000,
		CreatedAt:    time.Now(),
	}}
	handler := NewHandler(useCase, nopLogger{})

	body := `{
		"court": "Court 1",
		"gameType": "Singles",
		"startTime": "2027-05-01 10:00:00",
		"endTime": "2027-05-01 12:00:00",
		"phone": "777123456",
		"customer": "Emil Doktor"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservation/create", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, useCase.lastReq)
	assert.Equal(t, "Court 1", useCase.lastReq.CourtName)
	assert.Equal(t, start, useCase.lastReq.StartTime)

	var view map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "Court 1", view["court"])
	assert.Equal(t, "2027-05-01 10:00:00", view["startTime"])
	assert.Equal(t, float64(12000), view["price"])
}

func TestHandle_MalformedBody(t *testing.T) {
	handler := NewHandler(&fakeUseCase{}, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservation/create", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_MalformedTime(t *testing.T) {
	handler := NewHandler(&fakeUseCase{}, nopLogger{})

	body := `{"court": "Court 1", "gameType": "Singles", "startTime": "not-a-time", "endTime": "2027-05-01 12:00:00", "phone": "777123456"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservation/create", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"bad argument", createReservation.ErrCourtNotFound, http.StatusBadRequest},
		{"overlap conflict", createReservation.ErrOverlap, http.StatusConflict},
		{"internal", createReservation.ErrInternal, http.StatusInternalServerError},
	}

	body := `{"court": "Court 1", "gameType": "Singles", "startTime": "2027-05-01 10:00:00", "endTime": "2027-05-01 12:00:00", "phone": "777123456"}`

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHandler(&fakeUseCase{err: tt.err}, nopLogger{})

			req := httptest.NewRequest(http.MethodPost, "/api/v1/reservation/create", strings.NewReader(body))
			rec := httptest.NewRecorder()

			handler.Handle(rec, req)

			assert.Equal(t, tt.want, rec.Code)

			var errResp map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
			assert.Equal(t, float64(tt.want), errResp["code"])
		})
	}
}
