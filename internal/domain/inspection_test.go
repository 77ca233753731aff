package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	t.Run("Allowed transitions", func(t *testing.T) {
		assert.True(t, CanTransition(StatusPending, StatusConfirmed))
		assert.True(t, CanTransition(StatusPending, StatusCancelled))
		assert.True(t, CanTransition(StatusConfirmed, StatusCancelled))
		assert.True(t, CanTransition(StatusConfirmed, StatusCompleted))
	})

	t.Run("Pending cannot be completed directly", func(t *testing.T) {
		assert.False(t, CanTransition(StatusPending, StatusCompleted))
	})

	t.Run("Terminal statuses have no transitions", func(t *testing.T) {
		for _, to := range []InspectionStatus{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted} {
			assert.False(t, CanTransition(StatusCancelled, to), "cancelled -> %s", to)
			assert.False(t, CanTransition(StatusCompleted, to), "completed -> %s", to)
		}
	})

	t.Run("No self transitions", func(t *testing.T) {
		assert.False(t, CanTransition(StatusPending, StatusPending))
		assert.False(t, CanTransition(StatusConfirmed, StatusConfirmed))
	})

	t.Run("No backward transitions", func(t *testing.T) {
		assert.False(t, CanTransition(StatusConfirmed, StatusPending))
	})
}

func TestIsActive(t *testing.T) {
	assert.True(t, (&InspectionRequest{Status: StatusPending}).IsActive())
	assert.True(t, (&InspectionRequest{Status: StatusConfirmed}).IsActive())
	assert.False(t, (&InspectionRequest{Status: StatusCancelled}).IsActive())
	assert.False(t, (&InspectionRequest{Status: StatusCompleted}).IsActive())
}

func TestIsKnownStatus(t *testing.T) {
	assert.True(t, IsKnownStatus(StatusPending))
	assert.True(t, IsKnownStatus(StatusConfirmed))
	assert.True(t, IsKnownStatus(StatusCancelled))
	assert.True(t, IsKnownStatus(StatusCompleted))
	assert.False(t, IsKnownStatus("archived"))
	assert.False(t, IsKnownStatus(""))
}
