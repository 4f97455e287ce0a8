package get_appointments

import (
	"context"

	"github.com/danielnamimi665/barber-shop-web/internal/service/appointments/models"
)

type AppointmentService interface {
	ListGrouped(ctx context.Context) (*models.GroupedAppointmentsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
