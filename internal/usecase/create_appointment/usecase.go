package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/danielnamimi665/barber-shop-web/internal/domain"
	apptRepo "github.com/danielnamimi665/barber-shop-web/internal/infra/storage/appointment"
	"github.com/danielnamimi665/barber-shop-web/internal/notify"
)

// UseCase use case подтверждения брони (финальный этап оформления).
// Проверка занятости и вставка выполняются в одной сериализуемой транзакции:
// из двух одновременных броней одного слота пройти может только одна.
type UseCase struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	schedule        domain.ScheduleConfig
	clock           Clock
	notifier        Notifier
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	schedule domain.ScheduleConfig,
	clock Clock,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		schedule:        schedule,
		clock:           clock,
		notifier:        notifier,
		logger:          logger,
	}
}

// Execute выполняет use case подтверждения брони
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: user=%s, date=%s, time=%s, service=%s",
		req.UserID, req.SelectedDate.Format(domain.DateFormat), req.SelectedTime, req.ServiceType)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Прогоняем данные через этапы оформления: воркфлоу гарантирует,
	// что ни один этап не пропущен (услуга → слот → контакты)
	var draft domain.BookingDraft
	if err := draft.SelectService(req.ServiceType); err != nil {
		uc.logger.Warn("CreateAppointment: service stage failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := draft.SelectDate(req.SelectedDate); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := draft.SelectTime(req.SelectedTime); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := draft.SetContact(req.FullName, req.PhoneNumber); err != nil {
		uc.logger.Warn("CreateAppointment: contact stage failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	serviceType, date, slotTime, fullName, phoneNumber, err := draft.Complete()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 3. Дата в окне бронирования
	today := uc.clock.Today()
	if err := validateDateWindow(date, today, uc.schedule.BookingWindowDays); err != nil {
		uc.logger.Warn("CreateAppointment: date window validation failed: %v", err)
		return nil, err
	}

	// 4. Метка времени принадлежит сетке слотов
	if !uc.schedule.ContainsSlot(slotTime) {
		uc.logger.Warn("CreateAppointment: time %s is not on the slot grid", slotTime)
		return nil, ErrInvalidTimeSlot
	}

	// 5. Слот ещё не наступил
	if uc.clock.IsPastSlot(date, slotTime) {
		uc.logger.Warn("CreateAppointment: slot %s %s is in the past",
			date.Format(domain.DateFormat), slotTime)
		return nil, ErrPastSlot
	}

	appt := &domain.Appointment{
		ID:            uuid.NewString(),
		UserID:        req.UserID,
		SelectedDate:  date,
		SelectedTime:  slotTime,
		FullName:      fullName,
		PhoneNumber:   phoneNumber,
		ServiceType:   serviceType,
		Confirmed:     true,
		Status:        domain.StatusWaiting,
		AppointmentAt: uc.clock.SlotInstant(date, slotTime),
		CreatedAt:     uc.clock.Now(),
	}

	// 6. Критическая секция check-then-insert в сериализуемой транзакции.
	// Активные записи даты блокируются (FOR UPDATE), затем проверяется
	// занятость слота и выполняется вставка.
	var created *domain.Appointment

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		active, err := uc.appointmentRepo.ListActiveByDate(txCtx, date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get active appointments: %v", err)
			return fmt.Errorf("%w: failed to get active appointments: %v", ErrInternal, err)
		}

		for _, existing := range active {
			if existing.SelectedTime.Equal(slotTime) {
				uc.logger.Warn("CreateAppointment: slot %s %s already occupied by %s",
					date.Format(domain.DateFormat), slotTime, existing.ID)
				return ErrSlotOccupied
			}
		}

		result, err := uc.appointmentRepo.Insert(txCtx, appt)
		if err != nil {
			// Уникальный индекс — вторая линия обороны от двойной брони
			if errors.Is(err, apptRepo.ErrSlotOccupied) {
				return ErrSlotOccupied
			}
			uc.logger.Error("CreateAppointment: failed to insert appointment: %v", err)
			return fmt.Errorf("%w: failed to insert appointment: %v", ErrInternal, err)
		}

		created = result
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%s", created.ID)

	// 7. Best-effort уведомление других сессий
	uc.notifier.Publish(ctx, notify.Event{
		Action: notify.ActionCreated,
		Appointment: notify.AppointmentPayload{
			AppointmentID: created.ID,
			SelectedDate:  created.SelectedDate.Format(domain.DateFormat),
			SelectedTime:  created.SelectedTime.String(),
			Status:        string(created.Status),
		},
	})

	return &Response{
		ID:            created.ID,
		UserID:        created.UserID,
		SelectedDate:  created.SelectedDate,
		SelectedTime:  created.SelectedTime,
		FullName:      created.FullName,
		PhoneNumber:   created.PhoneNumber,
		ServiceType:   created.ServiceType,
		Confirmed:     created.Confirmed,
		Status:        string(created.Status),
		AppointmentAt: created.AppointmentAt,
		CreatedAt:     created.CreatedAt,
	}, nil
}
