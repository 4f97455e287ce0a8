package domain

import (
	"fmt"

	"github.com/danielnamimi665/barber-shop-web/pkg/types"
)

// ScheduleConfig фиксированное дневное расписание барбершопа.
// Задаётся на уровне деплоя (config.toml), не хранится в БД.
type ScheduleConfig struct {
	Timezone            string
	OpenTime            types.TimeString
	CloseTime           types.TimeString
	SlotDurationMinutes int
	BookingWindowDays   int // окно бронирования: [сегодня, сегодня+N] включительно
}

// DefaultScheduleConfig возвращает расписание по умолчанию (18 слотов, 9:00–17:30)
func DefaultScheduleConfig() ScheduleConfig {
	open, _ := types.NewTimeStringFromString(DefaultOpenTime)
	closeT, _ := types.NewTimeStringFromString(DefaultCloseTime)
	return ScheduleConfig{
		Timezone:            DefaultTimezone,
		OpenTime:            open,
		CloseTime:           closeT,
		SlotDurationMinutes: DefaultSlotDurationMinutes,
		BookingWindowDays:   DefaultBookingWindowDays,
	}
}

// Validate проверяет согласованность расписания
func (c ScheduleConfig) Validate() error {
	if c.SlotDurationMinutes < MinSlotDurationMinutes || c.SlotDurationMinutes > MaxSlotDurationMinutes {
		return fmt.Errorf("schedule: slot duration %d minutes is out of range", c.SlotDurationMinutes)
	}
	if c.BookingWindowDays < MinBookingWindowDays || c.BookingWindowDays > MaxBookingWindowDays {
		return fmt.Errorf("schedule: booking window %d days is out of range", c.BookingWindowDays)
	}
	if !c.OpenTime.IsBefore(c.CloseTime) {
		return fmt.Errorf("schedule: open time %s must be before close time %s", c.OpenTime, c.CloseTime)
	}
	return nil
}

// SlotTimes возвращает все метки слотов рабочего дня по порядку.
// Слот попадает в сетку, только если целиком помещается до закрытия.
func (c ScheduleConfig) SlotTimes() []types.TimeString {
	slots := make([]types.TimeString, 0)
	current := c.OpenTime

	for current.IsBefore(c.CloseTime) {
		end, err := current.AddMinutes(c.SlotDurationMinutes)
		if err != nil || end.IsAfter(c.CloseTime) {
			break
		}
		slots = append(slots, current)
		current = end
	}

	return slots
}

// ContainsSlot проверяет, что метка времени принадлежит сетке слотов
func (c ScheduleConfig) ContainsSlot(t types.TimeString) bool {
	for _, s := range c.SlotTimes() {
		if s.Equal(t) {
			return true
		}
	}
	return false
}
