package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielnamimi665/barber-shop-web/pkg/types"
)

func scheduleTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func TestDefaultScheduleConfig_SlotTimes(t *testing.T) {
	cfg := DefaultScheduleConfig()
	require.NoError(t, cfg.Validate())

	slots := cfg.SlotTimes()
	require.Len(t, slots, 18)
	assert.Equal(t, "9:00", slots[0].String())
	assert.Equal(t, "9:30", slots[1].String())
	assert.Equal(t, "17:30", slots[17].String())
}

func TestScheduleConfig_SlotMustFitBeforeClose(t *testing.T) {
	cfg := DefaultScheduleConfig()
	cfg.CloseTime = scheduleTime(t, "17:45")

	// Слот 17:30 длиной 30 минут не помещается до 17:45
	slots := cfg.SlotTimes()
	require.NotEmpty(t, slots)
	assert.Equal(t, "17:00", slots[len(slots)-1].String())
}

func TestScheduleConfig_ContainsSlot(t *testing.T) {
	cfg := DefaultScheduleConfig()

	assert.True(t, cfg.ContainsSlot(scheduleTime(t, "9:00")))
	assert.True(t, cfg.ContainsSlot(scheduleTime(t, "17:30")))
	assert.False(t, cfg.ContainsSlot(scheduleTime(t, "9:15")))
	assert.False(t, cfg.ContainsSlot(scheduleTime(t, "18:00")))
	assert.False(t, cfg.ContainsSlot(scheduleTime(t, "8:30")))
}

func TestScheduleConfig_Validate(t *testing.T) {
	cfg := DefaultScheduleConfig()
	cfg.OpenTime = scheduleTime(t, "18:00")
	cfg.CloseTime = scheduleTime(t, "9:00")
	assert.Error(t, cfg.Validate())

	cfg = DefaultScheduleConfig()
	cfg.SlotDurationMinutes = 0
	assert.Error(t, cfg.Validate())

	cfg = DefaultScheduleConfig()
	cfg.BookingWindowDays = -1
	assert.Error(t, cfg.Validate())
}
