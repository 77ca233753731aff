package get_available_times

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avtomix/ACS-InspectionService/internal/domain"
	getAvailableTimes "github.com/avtomix/ACS-InspectionService/internal/usecase/get_available_times"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubUseCase struct {
	calls int
}

func (uc *stubUseCase) Execute(ctx context.Context, req *getAvailableTimes.Request) (*getAvailableTimes.Response, error) {
	uc.calls++
	return &getAvailableTimes.Response{
		Date:           req.Date,
		AvailableTimes: domain.AllSlots(),
	}, nil
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) AvailableTimesResponse {
	t.Helper()
	var body AvailableTimesResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestHandler_Handle(t *testing.T) {
	t.Run("Valid date returns slots", func(t *testing.T) {
		handler := NewHandler(&stubUseCase{}, nopLogger{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/available-times?date=2026-09-08", nil)
		rec := httptest.NewRecorder()

		handler.Handle(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decodeBody(t, rec).AvailableTimes, 8)
	})

	t.Run("Missing date yields empty list, not an error", func(t *testing.T) {
		uc := &stubUseCase{}
		handler := NewHandler(uc, nopLogger{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/available-times", nil)
		rec := httptest.NewRecorder()

		handler.Handle(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, decodeBody(t, rec).AvailableTimes)
		assert.Zero(t, uc.calls, "use case must not be called for an unparseable date")
	})

	t.Run("Malformed date yields empty list", func(t *testing.T) {
		handler := NewHandler(&stubUseCase{}, nopLogger{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/available-times?date=08.09.2026", nil)
		rec := httptest.NewRecorder()

		handler.Handle(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, decodeBody(t, rec).AvailableTimes)
	})
}
