package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielnamimi665/barber-shop-web/pkg/types"
)

func draftSlotTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func TestBookingDraft_HappyPath(t *testing.T) {
	var d BookingDraft
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	require.NoError(t, d.SelectService("Стрижка"))
	require.NoError(t, d.SelectDate(date))
	require.NoError(t, d.SelectTime(draftSlotTime(t, "9:00")))
	require.NoError(t, d.SetContact("Daniel", "050-1234567"))

	service, gotDate, gotTime, fullName, phone, err := d.Complete()
	require.NoError(t, err)
	assert.Equal(t, "Стрижка", service)
	assert.Equal(t, date, gotDate)
	assert.Equal(t, "9:00", gotTime.String())
	assert.Equal(t, "Daniel", fullName)
	assert.Equal(t, "050-1234567", phone)
}

func TestBookingDraft_StagesCannotBeSkipped(t *testing.T) {
	var d BookingDraft
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	assert.ErrorIs(t, d.SelectDate(date), ErrServiceNotSelected)
	assert.ErrorIs(t, d.SelectTime(draftSlotTime(t, "9:00")), ErrSlotNotSelected)
	assert.ErrorIs(t, d.SetContact("Daniel", "050-1234567"), ErrSlotNotSelected)

	_, _, _, _, _, err := d.Complete()
	assert.ErrorIs(t, err, ErrServiceNotSelected)
}

func TestBookingDraft_TimeRequiresDate(t *testing.T) {
	var d BookingDraft
	require.NoError(t, d.SelectService("Стрижка"))

	assert.ErrorIs(t, d.SelectTime(draftSlotTime(t, "9:00")), ErrSlotNotSelected)
	assert.ErrorIs(t, d.SetContact("Daniel", "050-1234567"), ErrSlotNotSelected)
}

func TestBookingDraft_ReturningToEarlierStageClearsLaterChoices(t *testing.T) {
	var d BookingDraft
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	require.NoError(t, d.SelectService("Стрижка"))
	require.NoError(t, d.SelectDate(date))
	require.NoError(t, d.SelectTime(draftSlotTime(t, "9:00")))
	require.NoError(t, d.SetContact("Daniel", "050-1234567"))

	// Повторный выбор услуги сбрасывает слот и контакты
	require.NoError(t, d.SelectService("Бритьё"))
	assert.False(t, d.HasSlot())
	_, _, _, _, _, err := d.Complete()
	assert.ErrorIs(t, err, ErrSlotNotSelected)

	// Повторный выбор даты сбрасывает время
	require.NoError(t, d.SelectDate(date))
	assert.False(t, d.HasSlot())
	require.NoError(t, d.SelectTime(draftSlotTime(t, "10:00")))

	// Повторный выбор времени сбрасывает контакты
	require.NoError(t, d.SetContact("Daniel", "050-1234567"))
	require.NoError(t, d.SelectTime(draftSlotTime(t, "10:30")))
	_, _, _, _, _, err = d.Complete()
	assert.ErrorIs(t, err, ErrContactMissing)
}

func TestBookingDraft_InputValidation(t *testing.T) {
	var d BookingDraft
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	assert.ErrorIs(t, d.SelectService("   "), ErrEmptyServiceType)

	require.NoError(t, d.SelectService("Стрижка"))
	require.NoError(t, d.SelectDate(date))
	require.NoError(t, d.SelectTime(draftSlotTime(t, "9:00")))

	assert.ErrorIs(t, d.SetContact("", "050-1234567"), ErrContactMissing)
	assert.ErrorIs(t, d.SetContact("Daniel", "   "), ErrContactMissing)
}
