package schedule

import (
	"context"

	"github.com/danielnamimi665/barber-shop-web/internal/domain"
	"github.com/danielnamimi665/barber-shop-web/internal/service/schedule/models"
)

// Service сервис расписания барбершопа. Расписание фиксировано на уровне
// деплоя, поэтому сервис только отдаёт его клиентам.
type Service struct {
	config domain.ScheduleConfig
	logger Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(config domain.ScheduleConfig, logger Logger) *Service {
	return &Service{
		config: config,
		logger: logger,
	}
}

// Get возвращает расписание и слотовую сетку рабочего дня
func (s *Service) Get(_ context.Context) *models.ScheduleResponse {
	return models.FromDomainSchedule(s.config)
}
