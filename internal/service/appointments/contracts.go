package appointments

import (
	"context"
	"time"

	"github.com/danielnamimi665/barber-shop-web/internal/domain"
	"github.com/danielnamimi665/barber-shop-web/internal/notify"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	ListAll(ctx context.Context) ([]*domain.Appointment, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error
	Remove(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, today time.Time, nowInstant time.Time) (int64, error)
	PurgeCancelled(ctx context.Context) (int64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Clock интерфейс часов в бизнес-поясе барбершопа
type Clock interface {
	Now() time.Time
	Today() time.Time
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
