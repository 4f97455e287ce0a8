package get_available_slots

import (
	"context"
	"fmt"

	"github.com/danielnamimi665/barber-shop-web/internal/domain"
)

// UseCase use case получения сетки слотов на дату
type UseCase struct {
	appointmentRepo AppointmentRepository
	schedule        domain.ScheduleConfig
	clock           Clock
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	schedule domain.ScheduleConfig,
	clock Clock,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		schedule:        schedule,
		clock:           clock,
		logger:          logger,
	}
}

// Execute выполняет use case получения сетки слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата должна попадать в окно бронирования
	today := uc.clock.Today()
	if err := validateDateWindow(req.Date, today, uc.schedule.BookingWindowDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: date window validation failed: %v", err)
		return nil, err
	}

	// 3. Текущая занятость даты из хранилища
	active, err := uc.appointmentRepo.ListActiveByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 4. Классифицируем каждый слот сетки
	slots := classifySlots(uc.schedule, req.Date, active, uc.clock)

	uc.logger.Info("GetAvailableSlots: classified %d slots for date=%s",
		len(slots), req.Date.Format(domain.DateFormat))

	return &Response{
		Date:        req.Date,
		Slots:       slots,
		FullyBooked: allUnavailable(slots),
	}, nil
}
