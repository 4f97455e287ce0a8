package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielnamimi665/barber-shop-web/pkg/types"
)

// fakeTimeProvider фиксированный источник времени для тестов
type fakeTimeProvider struct {
	now time.Time
}

func (p *fakeTimeProvider) Now() time.Time {
	return p.now
}

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func TestNew_UnknownTimezone(t *testing.T) {
	_, err := New("Mars/Olympus_Mons")
	require.Error(t, err)
}

func TestClock_Today_UsesBusinessTimezone(t *testing.T) {
	// 23:30 UTC 9 июня = 02:30 10 июня в Иерусалиме (UTC+3 летом):
	// бизнес-сутки уже перешли на следующую дату
	provider := &fakeTimeProvider{now: time.Date(2025, 6, 9, 23, 30, 0, 0, time.UTC)}
	c, err := NewWithProvider("Asia/Jerusalem", provider)
	require.NoError(t, err)

	today := c.Today()
	assert.Equal(t, 2025, today.Year())
	assert.Equal(t, time.June, today.Month())
	assert.Equal(t, 10, today.Day())
	assert.Equal(t, 0, today.Hour())
}

func TestClock_SlotInstant(t *testing.T) {
	provider := &fakeTimeProvider{now: time.Date(2025, 6, 10, 5, 0, 0, 0, time.UTC)}
	c, err := NewWithProvider("Asia/Jerusalem", provider)
	require.NoError(t, err)

	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	instant := c.SlotInstant(date, mustTime(t, "9:00"))

	// 9:00 по Иерусалиму летом = 6:00 UTC
	assert.Equal(t, time.Date(2025, 6, 10, 6, 0, 0, 0, time.UTC), instant)
}

func TestClock_IsPastSlot(t *testing.T) {
	// Сейчас 10:00 по Иерусалиму (7:00 UTC)
	provider := &fakeTimeProvider{now: time.Date(2025, 6, 10, 7, 0, 0, 0, time.UTC)}
	c, err := NewWithProvider("Asia/Jerusalem", provider)
	require.NoError(t, err)

	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	assert.True(t, c.IsPastSlot(date, mustTime(t, "9:30")))
	// Граница: слот, начинающийся ровно сейчас, считается прошедшим
	assert.True(t, c.IsPastSlot(date, mustTime(t, "10:00")))
	assert.False(t, c.IsPastSlot(date, mustTime(t, "10:30")))
}

func TestClock_IsPastDate(t *testing.T) {
	provider := &fakeTimeProvider{now: time.Date(2025, 6, 10, 7, 0, 0, 0, time.UTC)}
	c, err := NewWithProvider("Asia/Jerusalem", provider)
	require.NoError(t, err)

	yesterday := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	today := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	tomorrow := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)

	assert.True(t, c.IsPastDate(yesterday))
	assert.False(t, c.IsPastDate(today))
	assert.False(t, c.IsPastDate(tomorrow))
	assert.True(t, c.IsToday(today))
	assert.False(t, c.IsToday(tomorrow))
}

func TestClock_Now_ReturnsUTC(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Jerusalem")
	require.NoError(t, err)

	provider := &fakeTimeProvider{now: time.Date(2025, 6, 10, 12, 0, 0, 0, loc)}
	c, err := NewWithProvider("Asia/Jerusalem", provider)
	require.NoError(t, err)

	now := c.Now()
	assert.Equal(t, time.UTC, now.Location())
	assert.Equal(t, 9, now.Hour())
}
