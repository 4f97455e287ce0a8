package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielnamimi665/barber-shop-web/internal/domain"
	apptRepo "github.com/danielnamimi665/barber-shop-web/internal/infra/storage/appointment"
	"github.com/danielnamimi665/barber-shop-web/internal/notify"
	"github.com/danielnamimi665/barber-shop-web/internal/service/appointments/models"
	"github.com/danielnamimi665/barber-shop-web/pkg/types"
)

// fakeRepo in-memory репозиторий записей для тестов сервиса
type fakeRepo struct {
	appointments map[string]*domain.Appointment
	deleteErr    error
}

func newFakeRepo(appts ...*domain.Appointment) *fakeRepo {
	r := &fakeRepo{appointments: make(map[string]*domain.Appointment)}
	for _, a := range appts {
		r.appointments[a.ID] = a
	}
	return r
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*domain.Appointment, error) {
	appt, ok := r.appointments[id]
	if !ok {
		return nil, apptRepo.ErrAppointmentNotFound
	}
	copied := *appt
	return &copied, nil
}

func (r *fakeRepo) ListAll(_ context.Context) ([]*domain.Appointment, error) {
	result := make([]*domain.Appointment, 0, len(r.appointments))
	for _, a := range r.appointments {
		result = append(result, a)
	}
	return result, nil
}

func (r *fakeRepo) ListByUser(_ context.Context, userID string) ([]*domain.Appointment, error) {
	result := make([]*domain.Appointment, 0)
	for _, a := range r.appointments {
		if a.UserID == userID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (r *fakeRepo) UpdateStatus(_ context.Context, id string, status domain.AppointmentStatus) error {
	appt, ok := r.appointments[id]
	if !ok {
		return apptRepo.ErrAppointmentNotFound
	}
	appt.Status = status
	return nil
}

func (r *fakeRepo) Remove(_ context.Context, id string) error {
	if _, ok := r.appointments[id]; !ok {
		return apptRepo.ErrAppointmentNotFound
	}
	delete(r.appointments, id)
	return nil
}

func (r *fakeRepo) DeleteExpired(_ context.Context, today time.Time, _ time.Time) (int64, error) {
	if r.deleteErr != nil {
		return 0, r.deleteErr
	}
	var deleted int64
	for id, a := range r.appointments {
		if a.SelectedDate.Before(today) {
			delete(r.appointments, id)
			deleted++
		}
	}
	return deleted, nil
}

func (r *fakeRepo) PurgeCancelled(_ context.Context) (int64, error) {
	var purged int64
	for id, a := range r.appointments {
		if a.Status == domain.StatusCancelled {
			delete(r.appointments, id)
			purged++
		}
	}
	return purged, nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeClock struct {
	today time.Time
}

func (c fakeClock) Now() time.Time {
	return c.today.Add(10 * time.Hour)
}

func (c fakeClock) Today() time.Time {
	return c.today
}

type fakeNotifier struct {
	events []notify.Event
}

func (n *fakeNotifier) Publish(_ context.Context, event notify.Event) {
	n.events = append(n.events, event)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func slotTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func testAppointment(t *testing.T, id, userID string, date time.Time, timeLabel string, status domain.AppointmentStatus) *domain.Appointment {
	t.Helper()
	return &domain.Appointment{
		ID:           id,
		UserID:       userID,
		SelectedDate: date,
		SelectedTime: slotTime(t, timeLabel),
		FullName:     "Daniel",
		PhoneNumber:  "050-1234567",
		ServiceType:  "Стрижка",
		Confirmed:    true,
		Status:       status,
	}
}

func newTestService(repo *fakeRepo) (*Service, *fakeNotifier) {
	notifier := &fakeNotifier{}
	clk := fakeClock{today: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)}
	return NewService(repo, fakeTxManager{}, clk, notifier, nopLogger{}), notifier
}

func TestListGrouped(t *testing.T) {
	date1 := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
	date2 := time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)
	repo := newFakeRepo(
		testAppointment(t, "a1", "u1", date1, "9:00", domain.StatusWaiting),
		testAppointment(t, "a2", "u2", date1, "10:30", domain.StatusCompleted),
		testAppointment(t, "a3", "u1", date2, "9:00", domain.StatusWaiting),
	)
	svc, _ := newTestService(repo)

	resp, err := svc.ListGrouped(context.Background())
	require.NoError(t, err)

	require.Len(t, resp.Appointments, 2)
	assert.Len(t, resp.Appointments["2025-06-11"], 2)
	assert.Len(t, resp.Appointments["2025-06-12"], 1)
}

func TestListGrouped_CleansExpiredFirst(t *testing.T) {
	expired := testAppointment(t, "old", "u1",
		time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), "9:00", domain.StatusWaiting)
	current := testAppointment(t, "a1", "u1",
		time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC), "9:00", domain.StatusWaiting)
	repo := newFakeRepo(expired, current)
	svc, _ := newTestService(repo)

	resp, err := svc.ListGrouped(context.Background())
	require.NoError(t, err)

	assert.NotContains(t, resp.Appointments, "2025-06-09")
	assert.Contains(t, resp.Appointments, "2025-06-11")
}

func TestUpdateStatus_Lifecycle(t *testing.T) {
	date := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
	repo := newFakeRepo(testAppointment(t, "a1", "u1", date, "9:00", domain.StatusWaiting))
	svc, notifier := newTestService(repo)

	// waiting → completed
	resp, err := svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		AppointmentID: "a1", Status: "completed",
	})
	require.NoError(t, err)
	assert.Equal(t, "completed", resp.Status)

	// completed → cancelled
	resp, err = svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		AppointmentID: "a1", Status: "cancelled",
	})
	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Status)

	// cancelled → completed запрещён
	_, err = svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		AppointmentID: "a1", Status: "completed",
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// cancelled → waiting разрешён (возврат админом)
	resp, err = svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		AppointmentID: "a1", Status: "waiting",
	})
	require.NoError(t, err)
	assert.Equal(t, "waiting", resp.Status)

	// События: updated, cancelled, updated
	require.Len(t, notifier.events, 3)
	assert.Equal(t, notify.ActionUpdated, notifier.events[0].Action)
	assert.Equal(t, notify.ActionCancelled, notifier.events[1].Action)
	assert.Equal(t, notify.ActionUpdated, notifier.events[2].Action)
}

func TestUpdateStatus_Errors(t *testing.T) {
	date := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
	repo := newFakeRepo(testAppointment(t, "a1", "u1", date, "9:00", domain.StatusWaiting))
	svc, _ := newTestService(repo)

	_, err := svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		AppointmentID: "missing", Status: "completed",
	})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	_, err = svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		AppointmentID: "a1", Status: "done",
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

type recordingTxManager struct {
	calls int
}

func (m *recordingTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

func TestUpdateStatus_RunsInTransaction(t *testing.T) {
	date := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
	repo := newFakeRepo(testAppointment(t, "a1", "u1", date, "9:00", domain.StatusWaiting))

	tx := &recordingTxManager{}
	clk := fakeClock{today: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)}
	svc := NewService(repo, tx, clk, &fakeNotifier{}, nopLogger{})

	// Чтение, проверка перехода и запись проходят одной транзакцией
	resp, err := svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		AppointmentID: "a1", Status: "completed",
	})
	require.NoError(t, err)
	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, 1, tx.calls)

	// Отказ в переходе тоже решается внутри транзакции
	repo.appointments["a1"].Status = domain.StatusCancelled
	_, err = svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		AppointmentID: "a1", Status: "completed",
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, 2, tx.calls)
}

func TestCancel_RemovesRecordAndFreesSlot(t *testing.T) {
	date := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
	repo := newFakeRepo(testAppointment(t, "a1", "u1", date, "9:00", domain.StatusWaiting))
	svc, notifier := newTestService(repo)

	err := svc.Cancel(context.Background(), &models.CancelRequest{
		AppointmentID: "a1", UserID: "u1",
	})
	require.NoError(t, err)

	// Запись удалена целиком
	_, err = svc.GetByID(context.Background(), "a1")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	require.Len(t, notifier.events, 1)
	assert.Equal(t, notify.ActionCancelled, notifier.events[0].Action)
}

func TestCancel_OwnershipEnforced(t *testing.T) {
	date := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
	repo := newFakeRepo(testAppointment(t, "a1", "u1", date, "9:00", domain.StatusWaiting))
	svc, _ := newTestService(repo)

	err := svc.Cancel(context.Background(), &models.CancelRequest{
		AppointmentID: "a1", UserID: "intruder",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Пустой UserID — админская отмена, проходит без проверки
	err = svc.Cancel(context.Background(), &models.CancelRequest{
		AppointmentID: "a1", UserID: "",
	})
	assert.NoError(t, err)
}

func TestCancel_NotFound(t *testing.T) {
	repo := newFakeRepo()
	svc, _ := newTestService(repo)

	err := svc.Cancel(context.Background(), &models.CancelRequest{
		AppointmentID: "missing", UserID: "u1",
	})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestSaveAll_BatchCommit(t *testing.T) {
	date := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
	repo := newFakeRepo(
		testAppointment(t, "a1", "u1", date, "9:00", domain.StatusWaiting),
		testAppointment(t, "a2", "u2", date, "9:30", domain.StatusWaiting),
		testAppointment(t, "a3", "u3", date, "10:00", domain.StatusCancelled),
	)
	svc, notifier := newTestService(repo)

	resp, err := svc.SaveAll(context.Background(), &models.SaveAllRequest{
		Changes: []models.StatusChange{
			{AppointmentID: "a1", Status: "completed"},
			{AppointmentID: "a2", Status: "cancelled"},
			{AppointmentID: "gone", Status: "completed"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Updated)
	assert.Equal(t, 1, resp.Removed)
	// a3 был отменён ранее и вычищен компактацией после коммита
	assert.Equal(t, int64(1), resp.Purged)
	assert.Equal(t, []string{"gone"}, resp.NotFound)

	// Статус a1 применён, a2 и a3 исчезли из хранилища
	a1, err := svc.GetByID(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, "completed", a1.Status)
	_, err = svc.GetByID(context.Background(), "a2")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	_, err = svc.GetByID(context.Background(), "a3")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	// События после коммита: updated для a1, cancelled для a2
	require.Len(t, notifier.events, 2)
	assert.Equal(t, notify.ActionUpdated, notifier.events[0].Action)
	assert.Equal(t, notify.ActionCancelled, notifier.events[1].Action)
}

func TestSaveAll_InvalidStatusRejectsWholeBatch(t *testing.T) {
	date := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
	repo := newFakeRepo(testAppointment(t, "a1", "u1", date, "9:00", domain.StatusWaiting))
	svc, _ := newTestService(repo)

	_, err := svc.SaveAll(context.Background(), &models.SaveAllRequest{
		Changes: []models.StatusChange{
			{AppointmentID: "a1", Status: "done"},
		},
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	// Хранилище не тронуто
	a1, err := svc.GetByID(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, "waiting", a1.Status)
}

func TestPurge(t *testing.T) {
	date := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
	repo := newFakeRepo(
		testAppointment(t, "a1", "u1", date, "9:00", domain.StatusCancelled),
		testAppointment(t, "a2", "u2", date, "9:30", domain.StatusWaiting),
	)
	svc, _ := newTestService(repo)

	purged, err := svc.Purge(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	_, err = svc.GetByID(context.Background(), "a1")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	_, err = svc.GetByID(context.Background(), "a2")
	assert.NoError(t, err)
}

func TestListByUser(t *testing.T) {
	date := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
	repo := newFakeRepo(
		testAppointment(t, "a1", "u1", date, "9:00", domain.StatusWaiting),
		testAppointment(t, "a2", "u2", date, "9:30", domain.StatusWaiting),
	)
	svc, _ := newTestService(repo)

	resp, err := svc.ListByUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, "a1", resp.Appointments[0].AppointmentID)

	_, err = svc.ListByUser(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
