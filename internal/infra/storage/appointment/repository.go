package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/danielnamimi665/barber-shop-web/internal/domain"
	"github.com/danielnamimi665/barber-shop-web/pkg/psqlbuilder"
	"github.com/danielnamimi665/barber-shop-web/pkg/txmanager"
	"github.com/danielnamimi665/barber-shop-web/pkg/types"
)

// uniqueViolation код ошибки PostgreSQL для нарушения уникального индекса
const uniqueViolation = "23505"

var appointmentColumns = []string{
	"id",
	"user_id",
	"selected_date",
	"selected_time",
	"full_name",
	"phone_number",
	"service_type",
	"confirmed",
	"status",
	"appointment_at",
	"created_at",
}

// Repository репозиторий записей барбершопа.
// Авторитетное хранилище: партиция = календарная дата, внутри партиции
// записи упорядочены по времени создания. Частичный уникальный индекс
// (selected_date, selected_time) WHERE status <> 'cancelled' дублирует
// прикладную проверку занятости слота на уровне БД.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Insert сохраняет подтверждённую запись.
// Возвращает ErrSlotOccupied, если активная запись уже держит этот слот —
// и при прикладной гонке внутри сериализуемой транзакции, и при срабатывании
// уникального индекса.
func (r *Repository) Insert(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"id",
			"user_id",
			"selected_date",
			"selected_time",
			"full_name",
			"phone_number",
			"service_type",
			"confirmed",
			"status",
			"appointment_at",
			"created_at",
		).
		Values(
			appt.ID,
			appt.UserID,
			appt.SelectedDate,
			appt.SelectedTime.String(),
			appt.FullName,
			appt.PhoneNumber,
			appt.ServiceType,
			appt.Confirmed,
			appt.Status,
			appt.AppointmentAt,
			appt.CreatedAt,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Insert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt time.Time
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrSlotOccupied
		}
		return nil, fmt.Errorf("%w: Insert - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt
	return appt, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id})

	// Внутри транзакции строка блокируется, чтобы параллельная смена
	// статуса не проскочила мимо проверки перехода
	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanOne(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// ListByDate получает записи одной даты в порядке создания
func (r *Repository) ListByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"selected_date": dateOnly(date)}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows, "ListByDate")
}

// ListActiveByDate получает активные (не отменённые) записи одной даты.
// Внутри транзакции блокирует строки (FOR UPDATE) — используется в критической
// секции check-then-insert при подтверждении брони.
func (r *Repository) ListActiveByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"selected_date": dateOnly(date)}).
		Where(squirrel.NotEq{"status": string(domain.StatusCancelled)}).
		OrderBy("created_at ASC", "id ASC")

	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows, "ListActiveByDate")
}

// ListAll получает все записи, отсортированные по дате и порядку создания.
// Группировка по датам выполняется на уровне сервиса.
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		OrderBy("selected_date ASC", "created_at ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows, "ListAll")
}

// ListByUser получает записи пользователя, новые первыми
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("appointment_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows, "ListByUser")
}

// UpdateStatus обновляет статус записи по ID
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", string(status)).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// Remove физически удаляет запись, освобождая её слот
func (r *Repository) Remove(ctx context.Context, id string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Remove - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Remove - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Remove - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// DeleteExpired удаляет записи прошлых дат и записи сегодняшнего дня,
// чей слот уже прошёл относительно nowInstant. Идемпотентна.
func (r *Repository) DeleteExpired(ctx context.Context, today time.Time, nowInstant time.Time) (int64, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("appointments").
		Where(squirrel.Or{
			squirrel.Lt{"selected_date": dateOnly(today)},
			squirrel.LtOrEq{"appointment_at": nowInstant},
		}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - execute delete: %v", ErrExecQuery, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - get rows affected: %v", ErrExecQuery, err)
	}

	return deleted, nil
}

// PurgeCancelled удаляет все отменённые записи по всем датам
func (r *Repository) PurgeCancelled(ctx context.Context) (int64, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("appointments").
		Where(squirrel.Eq{"status": string(domain.StatusCancelled)}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: PurgeCancelled - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: PurgeCancelled - execute delete: %v", ErrExecQuery, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: PurgeCancelled - get rows affected: %v", ErrExecQuery, err)
	}

	return deleted, nil
}

// scanOne сканирует одну строку в доменную модель
func (r *Repository) scanOne(row *sql.Row, op string) (*domain.Appointment, error) {
	var appt domain.Appointment
	var selectedTime string

	err := row.Scan(
		&appt.ID,
		&appt.UserID,
		&appt.SelectedDate,
		&selectedTime,
		&appt.FullName,
		&appt.PhoneNumber,
		&appt.ServiceType,
		&appt.Confirmed,
		&appt.Status,
		&appt.AppointmentAt,
		&appt.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan appointment: %v", ErrScanRow, op, err)
	}

	ts, err := types.NewTimeStringFromString(selectedTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - parse selected_time: %v", ErrScanRow, op, err)
	}
	appt.SelectedTime = ts

	return &appt, nil
}

// scanAppointments сканирует результаты запроса в слайс записей
func (r *Repository) scanAppointments(rows *sql.Rows, op string) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		var appt domain.Appointment
		var selectedTime string

		err := rows.Scan(
			&appt.ID,
			&appt.UserID,
			&appt.SelectedDate,
			&selectedTime,
			&appt.FullName,
			&appt.PhoneNumber,
			&appt.ServiceType,
			&appt.Confirmed,
			&appt.Status,
			&appt.AppointmentAt,
			&appt.CreatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}

		ts, err := types.NewTimeStringFromString(selectedTime)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - parse selected_time: %v", ErrScanRow, op, err)
		}
		appt.SelectedTime = ts

		appointments = append(appointments, &appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return appointments, nil
}

// dateOnly обнуляет компонент времени, чтобы ключ партиции был чистой датой
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
