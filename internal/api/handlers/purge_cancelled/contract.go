package purge_cancelled

import "context"

type AppointmentService interface {
	Purge(ctx context.Context) (int64, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
