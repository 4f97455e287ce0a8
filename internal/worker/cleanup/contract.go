package cleanup

import (
	"context"
	"time"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	DeleteExpired(ctx context.Context, today time.Time, nowInstant time.Time) (int64, error)
}

// Clock интерфейс часов в бизнес-поясе барбершопа
type Clock interface {
	Now() time.Time
	Today() time.Time
}

// Metrics интерфейс счётчика удалённых записей
type Metrics interface {
	AddCleaned(n int64)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
