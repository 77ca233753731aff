package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllSlots(t *testing.T) {
	slots := AllSlots()

	assert.Len(t, slots, 8)
	assert.Equal(t, SlotLabel("09:00-10:00"), slots[0])
	assert.Equal(t, SlotLabel("16:00-17:00"), slots[7])

	// AllSlots отдает копию, изменение снаружи не портит каталог
	slots[0] = "hacked"
	assert.Equal(t, SlotLabel("09:00-10:00"), AllSlots()[0])
}

func TestIsValidSlot(t *testing.T) {
	t.Run("Valid slots", func(t *testing.T) {
		for _, slot := range AllSlots() {
			assert.True(t, IsValidSlot(slot), "slot %s should be valid", slot)
		}
	})

	t.Run("Invalid slots", func(t *testing.T) {
		assert.False(t, IsValidSlot("08:00-09:00"))
		assert.False(t, IsValidSlot("09:00"))
		assert.False(t, IsValidSlot(""))
		assert.False(t, IsValidSlot("09:00 - 10:00"))
	})
}

func TestAvailableSlots(t *testing.T) {
	t.Run("No busy slots returns full catalog", func(t *testing.T) {
		available := AvailableSlots(nil)
		assert.Equal(t, AllSlots(), available)
	})

	t.Run("Busy slots are excluded", func(t *testing.T) {
		busy := []SlotLabel{"10:00-11:00", "14:00-15:00"}
		available := AvailableSlots(busy)

		assert.Len(t, available, 6)
		assert.NotContains(t, available, SlotLabel("10:00-11:00"))
		assert.NotContains(t, available, SlotLabel("14:00-15:00"))
	})

	t.Run("Catalog order is preserved", func(t *testing.T) {
		busy := []SlotLabel{"09:00-10:00", "12:00-13:00"}
		available := AvailableSlots(busy)

		expected := []SlotLabel{
			"10:00-11:00",
			"11:00-12:00",
			"13:00-14:00",
			"14:00-15:00",
			"15:00-16:00",
			"16:00-17:00",
		}
		assert.Equal(t, expected, available)
	})

	t.Run("All slots busy returns empty list", func(t *testing.T) {
		available := AvailableSlots(AllSlots())
		assert.Empty(t, available)
	})

	t.Run("Unknown busy labels are ignored", func(t *testing.T) {
		busy := []SlotLabel{"08:00-09:00"}
		available := AvailableSlots(busy)
		assert.Equal(t, AllSlots(), available)
	})
}
