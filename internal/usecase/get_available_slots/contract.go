package get_available_slots

import (
	"context"
	"time"

	"github.com/danielnamimi665/barber-shop-web/internal/domain"
	"github.com/danielnamimi665/barber-shop-web/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// ListActiveByDate получает активные (не отменённые) записи на дату
	ListActiveByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
}

// Clock интерфейс часов в бизнес-поясе барбершопа
type Clock interface {
	Today() time.Time
	IsPastSlot(date time.Time, t types.TimeString) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
