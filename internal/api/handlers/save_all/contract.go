package save_all

import (
	"context"

	"github.com/danielnamimi665/barber-shop-web/internal/service/appointments/models"
)

type AppointmentService interface {
	SaveAll(ctx context.Context, req *models.SaveAllRequest) (*models.SaveAllResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
