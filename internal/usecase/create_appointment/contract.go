package create_appointment

import (
	"context"
	"time"

	"github.com/danielnamimi665/barber-shop-web/internal/domain"
	"github.com/danielnamimi665/barber-shop-web/internal/notify"
	"github.com/danielnamimi665/barber-shop-web/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	ListActiveByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
	Insert(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Clock интерфейс часов в бизнес-поясе барбершопа
type Clock interface {
	Now() time.Time
	Today() time.Time
	IsPastSlot(date time.Time, t types.TimeString) bool
	SlotInstant(date time.Time, t types.TimeString) time.Time
}

// Notifier интерфейс best-effort уведомлений об изменениях хранилища
type Notifier interface {
	Publish(ctx context.Context, event notify.Event)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
