package get_available_slots

import (
	"github.com/danielnamimi665/barber-shop-web/internal/domain"
	getAvailableSlots "github.com/danielnamimi665/barber-shop-web/internal/usecase/get_available_slots"
)

// SlotResponse один слот дневной сетки с его состоянием
type SlotResponse struct {
	Time   string `json:"time"`   // "9:00"
	Status string `json:"status"` // "past" | "occupied" | "available"
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date        string         `json:"date"` // "2025-06-10"
	Slots       []SlotResponse `json:"slots"`
	FullyBooked bool           `json:"fullyBooked"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, SlotResponse{
			Time:   slot.StartTime.String(),
			Status: string(slot.State),
		})
	}

	return &AvailableSlotsResponse{
		Date:        resp.Date.Format(domain.DateFormat),
		Slots:       slots,
		FullyBooked: resp.FullyBooked,
	}
}
