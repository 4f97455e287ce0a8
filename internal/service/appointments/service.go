package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/danielnamimi665/barber-shop-web/internal/domain"
	apptRepo "github.com/danielnamimi665/barber-shop-web/internal/infra/storage/appointment"
	"github.com/danielnamimi665/barber-shop-web/internal/notify"
	"github.com/danielnamimi665/barber-shop-web/internal/service/appointments/models"
)

// Service менеджер жизненного цикла записей: просмотр хранилища, смена
// статусов, самостоятельная отмена клиентом, пакетный коммит админских
// правок и чистка просроченных/отменённых записей.
type Service struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	clock           Clock
	notifier        Notifier
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	clock Clock,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		clock:           clock,
		notifier:        notifier,
		logger:          logger,
	}
}

// ListGrouped возвращает всё содержимое хранилища, сгруппированное по датам.
// Перед чтением выполняет opportunistic cleanup просроченных записей.
func (s *Service) ListGrouped(ctx context.Context) (*models.GroupedAppointmentsResponse, error) {
	if err := s.CleanupExpired(ctx); err != nil {
		// Чистка не должна блокировать чтение
		s.logger.Warn("ListGrouped: opportunistic cleanup failed: %v", err)
	}

	appointments, err := s.appointmentRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("ListGrouped: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListGrouped - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListGrouped: fetched %d appointments", len(appointments))
	return models.GroupByDate(appointments), nil
}

// GetByID получает одну запись по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.AppointmentResponse, error) {
	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// ListByUser получает записи пользователя для self-service отображения
func (s *Service) ListByUser(ctx context.Context, userID string) (*models.AppointmentListResponse, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("ListByUser: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: ListByUser - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByUser: fetched %d appointments for user=%s", len(appointments), userID)
	return models.FromDomainAppointmentList(appointments), nil
}

// UpdateStatus переводит запись в новый статус с проверкой допустимости
// перехода. Отменённая запись перестаёт занимать слот сразу; физически её
// уберёт purge или пакетный коммит.
func (s *Service) UpdateStatus(ctx context.Context, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("UpdateStatus: appointment=%s, status=%s", req.AppointmentID, req.Status)

	newStatus, ok := domain.ParseStatus(req.Status)
	if !ok {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment=%s", req.Status, req.AppointmentID)
		return nil, ErrInvalidStatus
	}

	// Чтение и запись в одной транзакции: GetByID блокирует строку,
	// конкурирующая правка ждёт коммита и увидит уже новый статус
	var appt *domain.Appointment
	txErr := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		appt, err = s.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
				s.logger.Warn("UpdateStatus: appointment id=%s not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			s.logger.Error("UpdateStatus: repository error for id=%s: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		if !appt.Status.CanTransitionTo(newStatus) {
			s.logger.Warn("UpdateStatus: transition %s -> %s is not allowed for id=%s",
				appt.Status, newStatus, req.AppointmentID)
			return ErrInvalidTransition
		}

		if err := s.appointmentRepo.UpdateStatus(txCtx, req.AppointmentID, newStatus); err != nil {
			if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			s.logger.Error("UpdateStatus: repository error for id=%s: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	appt.Status = newStatus
	s.logger.Info("UpdateStatus: appointment id=%s moved to status=%s", req.AppointmentID, newStatus)

	s.publishChange(ctx, appt, actionForStatus(newStatus))

	return models.FromDomainAppointment(appt), nil
}

// Cancel самостоятельная отмена клиентом: запись удаляется целиком,
// слот сразу становится доступным.
func (s *Service) Cancel(ctx context.Context, req *models.CancelRequest) error {
	s.logger.Info("Cancel: appointment=%s, user=%s", req.AppointmentID, req.UserID)

	appt, err := s.appointmentRepo.GetByID(ctx, req.AppointmentID)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%s not found", req.AppointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for id=%s: %v", req.AppointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Сессия может отменить только свою запись; записи, созданные до
	// привязки к пользователю, не проверяются
	if req.UserID != "" && appt.UserID != "" && appt.UserID != req.UserID {
		s.logger.Warn("Cancel: user=%s is not the owner of appointment id=%s", req.UserID, req.AppointmentID)
		return ErrAccessDenied
	}

	if err := s.appointmentRepo.Remove(ctx, req.AppointmentID); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for id=%s: %v", req.AppointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: appointment id=%s removed, slot %s %s is free again",
		req.AppointmentID, appt.SelectedDate.Format(domain.DateFormat), appt.SelectedTime)

	appt.Status = domain.StatusCancelled
	s.publishChange(ctx, appt, notify.ActionCancelled)

	return nil
}

// SaveAll коммитит пакет отложенных админских правок одной транзакцией.
// Правка cancelled удаляет запись целиком, остальные меняют статус.
// Конфликт с параллельной одиночной отменой решается как
// last-committed-wins: исчезнувшие к моменту коммита ID попадают в
// NotFound, пакет не прерывается. После коммита вычищаются все
// отменённые записи хранилища.
func (s *Service) SaveAll(ctx context.Context, req *models.SaveAllRequest) (*models.SaveAllResponse, error) {
	s.logger.Info("SaveAll: committing %d staged changes", len(req.Changes))

	resp := &models.SaveAllResponse{NotFound: make([]string, 0)}
	changed := make([]*domain.Appointment, 0, len(req.Changes))

	// Валидация статусов до входа в транзакцию
	for _, change := range req.Changes {
		if _, ok := domain.ParseStatus(change.Status); !ok {
			s.logger.Warn("SaveAll: invalid status=%s for appointment=%s", change.Status, change.AppointmentID)
			return nil, ErrInvalidStatus
		}
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		for _, change := range req.Changes {
			status, _ := domain.ParseStatus(change.Status)

			appt, err := s.appointmentRepo.GetByID(txCtx, change.AppointmentID)
			if err != nil {
				if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
					resp.NotFound = append(resp.NotFound, change.AppointmentID)
					continue
				}
				return fmt.Errorf("%w: SaveAll - repository error: %v", ErrInternal, err)
			}

			if status == domain.StatusCancelled {
				if err := s.appointmentRepo.Remove(txCtx, change.AppointmentID); err != nil {
					if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
						resp.NotFound = append(resp.NotFound, change.AppointmentID)
						continue
					}
					return fmt.Errorf("%w: SaveAll - repository error: %v", ErrInternal, err)
				}
				resp.Removed++
			} else {
				if err := s.appointmentRepo.UpdateStatus(txCtx, change.AppointmentID, status); err != nil {
					if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
						resp.NotFound = append(resp.NotFound, change.AppointmentID)
						continue
					}
					return fmt.Errorf("%w: SaveAll - repository error: %v", ErrInternal, err)
				}
				resp.Updated++
			}

			appt.Status = status
			changed = append(changed, appt)
		}

		// Компактация: убираем отменённые записи по всем датам
		purged, err := s.appointmentRepo.PurgeCancelled(txCtx)
		if err != nil {
			return fmt.Errorf("%w: SaveAll - purge cancelled: %v", ErrInternal, err)
		}
		resp.Purged = purged

		return nil
	})

	if err != nil {
		s.logger.Error("SaveAll: batch commit failed: %v", err)
		return nil, err
	}

	// Уведомления отправляются после коммита
	for _, appt := range changed {
		s.publishChange(ctx, appt, actionForStatus(appt.Status))
	}

	s.logger.Info("SaveAll: committed batch, updated=%d, removed=%d, purged=%d, not_found=%d",
		resp.Updated, resp.Removed, resp.Purged, len(resp.NotFound))

	return resp, nil
}

// Purge удаляет все отменённые записи хранилища
func (s *Service) Purge(ctx context.Context) (int64, error) {
	purged, err := s.appointmentRepo.PurgeCancelled(ctx)
	if err != nil {
		s.logger.Error("Purge: repository error: %v", err)
		return 0, fmt.Errorf("%w: Purge - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Purge: removed %d cancelled appointments", purged)
	return purged, nil
}

// CleanupExpired удаляет записи прошлых дат и прошедшие слоты сегодняшнего
// дня. Идемпотентна; вызывается при каждом чтении и фоновым воркером.
func (s *Service) CleanupExpired(ctx context.Context) error {
	deleted, err := s.appointmentRepo.DeleteExpired(ctx, s.clock.Today(), s.clock.Now())
	if err != nil {
		return fmt.Errorf("%w: CleanupExpired - repository error: %v", ErrInternal, err)
	}

	if deleted > 0 {
		s.logger.Info("CleanupExpired: removed %d expired appointments", deleted)
	}

	return nil
}

func (s *Service) publishChange(ctx context.Context, appt *domain.Appointment, action notify.Action) {
	s.notifier.Publish(ctx, notify.Event{
		Action: action,
		Appointment: notify.AppointmentPayload{
			AppointmentID: appt.ID,
			SelectedDate:  appt.SelectedDate.Format(domain.DateFormat),
			SelectedTime:  appt.SelectedTime.String(),
			Status:        string(appt.Status),
		},
	})
}

func actionForStatus(status domain.AppointmentStatus) notify.Action {
	if status == domain.StatusCancelled {
		return notify.ActionCancelled
	}
	return notify.ActionUpdated
}
