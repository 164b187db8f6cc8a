package delivery

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cape/internal/models"
)

// at builds a local wall-clock moment on a fixed date.
func at(hour, minute int) time.Time {
	return time.Date(2026, time.March, 14, hour, minute, 0, 0, time.Local)
}

func TestGenerateDeliveryTimeSlotsEarlyMorning(t *testing.T) {
	slots := GenerateDeliveryTimeSlots(at(8, 0))

	// All five windows today plus all five tomorrow.
	require.Len(t, slots, 10)
	assert.Equal(t, "today-0", slots[0].ID)
	assert.Equal(t, "2026-03-14", slots[0].Date)
	assert.Equal(t, "11:00-13:00", slots[0].TimeRange)
	assert.Equal(t, "tomorrow-4", slots[9].ID)
	assert.Equal(t, "2026-03-15", slots[9].Date)
	for _, slot := range slots {
		assert.True(t, slot.Available)
	}
}

func TestGenerateDeliveryTimeSlotsLeadTimeBoundary(t *testing.T) {
	// At 09:00 the 11:00 window is exactly 120 minutes away: included.
	slots := GenerateDeliveryTimeSlots(at(9, 0))
	require.Len(t, slots, 10)

	// One minute later it is 119 minutes away: excluded.
	slots = GenerateDeliveryTimeSlots(at(9, 1))
	require.Len(t, slots, 9)
	assert.Equal(t, "today-1", slots[0].ID)
}

func TestGenerateDeliveryTimeSlotsLateEvening(t *testing.T) {
	// After 19:00 no window today is reachable; tomorrow's remain.
	slots := GenerateDeliveryTimeSlots(at(19, 30))
	require.Len(t, slots, 5)
	for i, slot := range slots {
		assert.Equal(t, fmt.Sprintf("tomorrow-%d", i), slot.ID)
		assert.Equal(t, "2026-03-15", slot.Date)
	}
}

func TestIsTimeSlotAvailableToday(t *testing.T) {
	slot := models.DeliveryTimeSlot{
		ID:        "today-2",
		Date:      "2026-03-14",
		TimeRange: "15:00-17:00",
		Available: true,
	}

	// Exactly 120 minutes before the start is enough.
	assert.True(t, IsTimeSlotAvailable(slot, at(13, 0)))
	// 119 minutes is not.
	assert.False(t, IsTimeSlotAvailable(slot, at(13, 1)))
	assert.True(t, IsTimeSlotAvailable(slot, at(8, 0)))
	assert.False(t, IsTimeSlotAvailable(slot, at(16, 0)))
}

func TestIsTimeSlotAvailableTomorrow(t *testing.T) {
	slot := models.DeliveryTimeSlot{
		ID:        "tomorrow-0",
		Date:      "2026-03-15",
		TimeRange: "11:00-13:00",
		Available: true,
	}
	// Tomorrow's windows ignore the current time of day.
	assert.True(t, IsTimeSlotAvailable(slot, at(23, 59)))

	slot.Available = false
	assert.False(t, IsTimeSlotAvailable(slot, at(8, 0)))
}

func TestIsTimeSlotAvailablePastDate(t *testing.T) {
	slot := models.DeliveryTimeSlot{
		ID:        "today-0",
		Date:      "2026-03-13",
		TimeRange: "11:00-13:00",
		Available: true,
	}
	// Yesterday is gone no matter what the flag says.
	assert.False(t, IsTimeSlotAvailable(slot, at(8, 0)))
}

func TestIsTimeSlotAvailableMalformed(t *testing.T) {
	assert.False(t, IsTimeSlotAvailable(models.DeliveryTimeSlot{Date: "not-a-date", Available: true}, at(8, 0)))
	assert.False(t, IsTimeSlotAvailable(models.DeliveryTimeSlot{Date: "2026-03-14", TimeRange: "garbage", Available: true}, at(8, 0)))
}

func TestGroupTimeSlotsByDate(t *testing.T) {
	assert.Empty(t, GroupTimeSlotsByDate(nil))

	slots := GenerateDeliveryTimeSlots(at(8, 0))
	groups := GroupTimeSlotsByDate(slots)
	require.Len(t, groups, 2)
	require.Len(t, groups["2026-03-14"], 5)
	require.Len(t, groups["2026-03-15"], 5)
	assert.Equal(t, "11:00-13:00", groups["2026-03-14"][0].TimeRange)
	assert.Equal(t, "19:00-21:00", groups["2026-03-15"][4].TimeRange)
}

func TestDateDisplayLabel(t *testing.T) {
	now := at(12, 0)
	assert.Equal(t, "Сегодня", DateDisplayLabel("2026-03-14", now))
	assert.Equal(t, "Завтра", DateDisplayLabel("2026-03-15", now))
	assert.Equal(t, "20 марта", DateDisplayLabel("2026-03-20", now))
	assert.Equal(t, "1 января", DateDisplayLabel("2027-01-01", now))
}

func TestFormatDeliveryTimeSlot(t *testing.T) {
	now := at(8, 0)
	slot := models.DeliveryTimeSlot{Date: "2026-03-14", TimeRange: "15:00-17:00"}
	assert.Equal(t, "Сегодня, 15:00-17:00", FormatDeliveryTimeSlot(slot, now))

	slot.Date = "2026-03-15"
	assert.Equal(t, "Завтра, 15:00-17:00", FormatDeliveryTimeSlot(slot, now))
}

func TestFindSlotByID(t *testing.T) {
	now := at(8, 0)
	slot, ok := FindSlotByID("tomorrow-2", now)
	require.True(t, ok)
	assert.Equal(t, "15:00-17:00", slot.TimeRange)
	assert.Equal(t, "2026-03-15", slot.Date)

	_, ok = FindSlotByID("nope", now)
	assert.False(t, ok)
}
