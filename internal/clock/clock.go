// Package clock адаптер часов и часового пояса.
// Все проверки "дата в прошлом" и "слот уже прошёл" идут через него,
// чтобы границы локальных суток считались в бизнес-поясе барбершопа,
// а не строковым сравнением и не в поясе сервера.
package clock

import (
	"fmt"
	"time"

	"github.com/danielnamimi665/barber-shop-web/pkg/types"
)

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Clock часы с фиксированным бизнес-поясом
type Clock struct {
	loc      *time.Location
	provider TimeProvider
}

// New создает Clock для указанного часового пояса (IANA, например "Asia/Jerusalem")
func New(timezone string) (*Clock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("clock: failed to load timezone %q: %w", timezone, err)
	}
	return &Clock{loc: loc, provider: &RealTimeProvider{}}, nil
}

// NewWithProvider создает Clock с подменным источником времени (для тестов)
func NewWithProvider(timezone string, provider TimeProvider) (*Clock, error) {
	c, err := New(timezone)
	if err != nil {
		return nil, err
	}
	c.provider = provider
	return c, nil
}

// Location возвращает бизнес-пояс
func (c *Clock) Location() *time.Location {
	return c.loc
}

// Now возвращает текущий UTC-инстант
func (c *Clock) Now() time.Time {
	return c.provider.Now().UTC()
}

// Today возвращает сегодняшнюю дату (полночь) в бизнес-поясе
func (c *Clock) Today() time.Time {
	now := c.provider.Now().In(c.loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, c.loc)
}

// SlotInstant переводит (локальная дата, метка слота) в UTC-инстант
func (c *Clock) SlotInstant(date time.Time, t types.TimeString) time.Time {
	local := time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, c.loc)
	return local.UTC()
}

// IsPast возвращает true, если инстант не позже текущего момента
func (c *Clock) IsPast(instant time.Time) bool {
	return !instant.After(c.Now())
}

// IsPastSlot возвращает true, если слот (дата, время) уже наступил
func (c *Clock) IsPastSlot(date time.Time, t types.TimeString) bool {
	return c.IsPast(c.SlotInstant(date, t))
}

// IsPastDate возвращает true, если дата строго раньше сегодняшней в бизнес-поясе
func (c *Clock) IsPastDate(date time.Time) bool {
	today := c.Today()
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, c.loc)
	return dateOnly.Before(today)
}

// IsToday возвращает true, если дата совпадает с сегодняшней в бизнес-поясе
func (c *Clock) IsToday(date time.Time) bool {
	today := c.Today()
	y1, m1, d1 := today.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
