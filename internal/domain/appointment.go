package domain

import (
	"time"

	"github.com/danielnamimi665/barber-shop-web/pkg/types"
)

// AppointmentStatus represents the lifecycle status of an appointment
type AppointmentStatus string

const (
	StatusWaiting   AppointmentStatus = "waiting"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a confirmed barbershop appointment.
// SelectedDate и SelectedTime — локальная дата и метка слота, ключ занятости.
// AppointmentAt и CreatedAt — UTC-инстанты для сравнений "в прошлом/в будущем"
// независимо от часового пояса отображения.
type Appointment struct {
	ID           string // opaque UUID, генерируется при подтверждении
	UserID       string // opaque identity из auth-провайдера
	SelectedDate time.Time
	SelectedTime types.TimeString
	FullName     string
	PhoneNumber  string
	ServiceType  string
	Confirmed    bool
	Status       AppointmentStatus

	AppointmentAt time.Time // UTC-инстант начала слота
	CreatedAt     time.Time // UTC-инстант подтверждения
}

// IsActive returns true if the appointment occupies its slot.
// Отменённая запись слот не занимает.
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// ParseStatus converts a raw string into AppointmentStatus with validation
func ParseStatus(s string) (AppointmentStatus, bool) {
	switch AppointmentStatus(s) {
	case StatusWaiting, StatusCompleted, StatusCancelled:
		return AppointmentStatus(s), true
	default:
		return "", false
	}
}

// CanTransitionTo reports whether the status transition is allowed.
// Разрешённые переходы:
//
//	waiting   → completed
//	waiting   → cancelled
//	completed → cancelled
//	любой     → waiting (возврат админом)
//
// Прямой переход cancelled → completed запрещён.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	if s == next {
		return true
	}
	switch next {
	case StatusWaiting:
		return true
	case StatusCompleted:
		return s == StatusWaiting
	case StatusCancelled:
		return s == StatusWaiting || s == StatusCompleted
	default:
		return false
	}
}

// AppointmentsByDate группа записей одного календарного дня в порядке создания
type AppointmentsByDate struct {
	Date         time.Time
	Appointments []*Appointment
}
