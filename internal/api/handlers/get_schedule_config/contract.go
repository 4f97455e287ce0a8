package get_schedule_config

import (
	"context"

	"github.com/danielnamimi665/barber-shop-web/internal/service/schedule/models"
)

type ScheduleService interface {
	Get(ctx context.Context) *models.ScheduleResponse
}

type Logger interface {
	Info(format string, v ...interface{})
}
