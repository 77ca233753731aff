package get_available_times

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avtomix/ACS-InspectionService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubInspectionRepo struct {
	busy []domain.SlotLabel
	err  error
}

func (r *stubInspectionRepo) BusySlots(ctx context.Context, date time.Time) ([]domain.SlotLabel, error) {
	return r.busy, r.err
}

var testDate = time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC)

func TestUseCase_Execute(t *testing.T) {
	t.Run("Free date returns full catalog", func(t *testing.T) {
		uc := NewUseCase(&stubInspectionRepo{}, nopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{Date: testDate})

		require.NoError(t, err)
		assert.Equal(t, domain.AllSlots(), resp.AvailableTimes)
	})

	t.Run("Busy slots are excluded in catalog order", func(t *testing.T) {
		repo := &stubInspectionRepo{
			busy: []domain.SlotLabel{"09:00-10:00", "13:00-14:00"},
		}
		uc := NewUseCase(repo, nopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{Date: testDate})

		require.NoError(t, err)
		expected := []domain.SlotLabel{
			"10:00-11:00",
			"11:00-12:00",
			"12:00-13:00",
			"14:00-15:00",
			"15:00-16:00",
			"16:00-17:00",
		}
		assert.Equal(t, expected, resp.AvailableTimes)
	})

	t.Run("Fully booked date returns empty list", func(t *testing.T) {
		uc := NewUseCase(&stubInspectionRepo{busy: domain.AllSlots()}, nopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{Date: testDate})

		require.NoError(t, err)
		assert.Empty(t, resp.AvailableTimes)
	})

	t.Run("Repeated reads are idempotent", func(t *testing.T) {
		repo := &stubInspectionRepo{busy: []domain.SlotLabel{"11:00-12:00"}}
		uc := NewUseCase(repo, nopLogger{})

		first, err := uc.Execute(context.Background(), &Request{Date: testDate})
		require.NoError(t, err)
		second, err := uc.Execute(context.Background(), &Request{Date: testDate})
		require.NoError(t, err)

		assert.Equal(t, first.AvailableTimes, second.AvailableTimes)
	})

	t.Run("Zero date is rejected", func(t *testing.T) {
		uc := NewUseCase(&stubInspectionRepo{}, nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Repository error maps to internal error", func(t *testing.T) {
		uc := NewUseCase(&stubInspectionRepo{err: errors.New("connection lost")}, nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{Date: testDate})
		assert.ErrorIs(t, err, ErrInternal)
	})
}
