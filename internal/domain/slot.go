package domain

import "github.com/danielnamimi665/barber-shop-web/pkg/types"

// SlotState состояние слота в календаре на конкретную дату
type SlotState string

const (
	SlotPast      SlotState = "past"      // инстант слота уже наступил
	SlotOccupied  SlotState = "occupied"  // занят активной (не отменённой) записью
	SlotAvailable SlotState = "available" // свободен для брони
)

// Slot represents one entry of the daily time grid with its classification
type Slot struct {
	StartTime types.TimeString
	State     SlotState
}

// IsBookable returns true if the slot can accept a new appointment
func (s *Slot) IsBookable() bool {
	return s.State == SlotAvailable
}
