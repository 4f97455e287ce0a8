package models

import "github.com/danielnamimi665/barber-shop-web/internal/domain"

// ScheduleResponse расписание работы барбершопа и готовая слотовая сетка
type ScheduleResponse struct {
	Timezone            string   `json:"timezone"`
	OpenTime            string   `json:"openTime"`  // "9:00"
	CloseTime           string   `json:"closeTime"` // "18:00"
	SlotDurationMinutes int      `json:"slotDurationMinutes"`
	BookingWindowDays   int      `json:"bookingWindowDays"`
	SlotTimes           []string `json:"slotTimes"`
}

// FromDomainSchedule конвертирует domain конфигурацию в DTO
func FromDomainSchedule(cfg domain.ScheduleConfig) *ScheduleResponse {
	slots := cfg.SlotTimes()

	labels := make([]string, 0, len(slots))
	for _, slot := range slots {
		labels = append(labels, slot.String())
	}

	return &ScheduleResponse{
		Timezone:            cfg.Timezone,
		OpenTime:            cfg.OpenTime.String(),
		CloseTime:           cfg.CloseTime.String(),
		SlotDurationMinutes: cfg.SlotDurationMinutes,
		BookingWindowDays:   cfg.BookingWindowDays,
		SlotTimes:           labels,
	}
}
