package get_available_slots

import (
	"time"

	"github.com/danielnamimi665/barber-shop-web/internal/domain"
	"github.com/danielnamimi665/barber-shop-web/pkg/types"
)

// classifySlots строит полную дневную сетку и классифицирует каждый слот.
// Приоритет состояний: past → occupied → available.
// Классификация вычисляется заново на каждый запрос по текущему состоянию
// хранилища — никакого кэширования между вызовами.
func classifySlots(
	schedule domain.ScheduleConfig,
	date time.Time,
	active []*domain.Appointment,
	clk Clock,
) []domain.Slot {
	occupied := occupiedTimes(active)

	grid := schedule.SlotTimes()
	slots := make([]domain.Slot, 0, len(grid))

	for _, t := range grid {
		state := domain.SlotAvailable

		switch {
		case clk.IsPastSlot(date, t):
			state = domain.SlotPast
		case occupied[t.String()]:
			state = domain.SlotOccupied
		}

		slots = append(slots, domain.Slot{StartTime: t, State: state})
	}

	return slots
}

// occupiedTimes собирает множество меток времени, занятых активными записями
func occupiedTimes(active []*domain.Appointment) map[string]bool {
	result := make(map[string]bool, len(active))
	for _, appt := range active {
		if appt.IsActive() {
			result[appt.SelectedTime.String()] = true
		}
	}
	return result
}

// allUnavailable возвращает true, если в сетке нет ни одного доступного слота
func allUnavailable(slots []domain.Slot) bool {
	for i := range slots {
		if slots[i].IsBookable() {
			return false
		}
	}
	return true
}

// slotInGrid проверяет принадлежность метки времени сетке расписания
func slotInGrid(schedule domain.ScheduleConfig, t types.TimeString) bool {
	return schedule.ContainsSlot(t)
}
