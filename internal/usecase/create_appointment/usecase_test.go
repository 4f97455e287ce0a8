package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielnamimi665/barber-shop-web/internal/domain"
	apptRepo "github.com/danielnamimi665/barber-shop-web/internal/infra/storage/appointment"
	"github.com/danielnamimi665/barber-shop-web/internal/notify"
	"github.com/danielnamimi665/barber-shop-web/pkg/types"
)

type fakeRepo struct {
	active    []*domain.Appointment
	insertErr error
	inserted  *domain.Appointment
}

func (r *fakeRepo) ListActiveByDate(_ context.Context, _ time.Time) ([]*domain.Appointment, error) {
	return r.active, nil
}

func (r *fakeRepo) Insert(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if r.insertErr != nil {
		return nil, r.insertErr
	}
	r.inserted = appt
	return appt, nil
}

// fakeTxManager выполняет функцию без настоящей транзакции
type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type fakeClock struct {
	today time.Time
	now   time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Today() time.Time {
	return c.today
}

func (c *fakeClock) IsPastSlot(date time.Time, t types.TimeString) bool {
	return !c.SlotInstant(date, t).After(c.now)
}

func (c *fakeClock) SlotInstant(date time.Time, t types.TimeString) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)
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

func validRequest(t *testing.T) *Request {
	t.Helper()
	return &Request{
		UserID:       "user-1",
		ServiceType:  "Стрижка",
		SelectedDate: time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC),
		SelectedTime: slotTime(t, "10:30"),
		FullName:     "Daniel",
		PhoneNumber:  "050-1234567",
	}
}

func newFixture(t *testing.T) (*UseCase, *fakeRepo, *fakeTxManager, *fakeNotifier) {
	t.Helper()

	repo := &fakeRepo{}
	txMgr := &fakeTxManager{}
	notifier := &fakeNotifier{}
	clk := &fakeClock{
		today: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		now:   time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC),
	}

	uc := NewUseCase(repo, txMgr, domain.DefaultScheduleConfig(), clk, notifier, nopLogger{})
	return uc, repo, txMgr, notifier
}

func TestExecute_Success(t *testing.T) {
	uc, repo, txMgr, notifier := newFixture(t)

	resp, err := uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "user-1", resp.UserID)
	assert.Equal(t, "10:30", resp.SelectedTime.String())
	assert.True(t, resp.Confirmed)
	assert.Equal(t, string(domain.StatusWaiting), resp.Status)
	assert.Equal(t, time.Date(2025, 6, 11, 10, 30, 0, 0, time.UTC), resp.AppointmentAt)

	// Вставка прошла внутри транзакции
	assert.Equal(t, 1, txMgr.calls)
	require.NotNil(t, repo.inserted)
	assert.Equal(t, domain.StatusWaiting, repo.inserted.Status)

	// Опубликовано событие создания
	require.Len(t, notifier.events, 1)
	assert.Equal(t, notify.ActionCreated, notifier.events[0].Action)
	assert.Equal(t, resp.ID, notifier.events[0].Appointment.AppointmentID)
}

func TestExecute_SlotOccupied(t *testing.T) {
	uc, repo, _, notifier := newFixture(t)
	repo.active = []*domain.Appointment{
		{ID: "existing", SelectedTime: slotTime(t, "10:30"), Status: domain.StatusWaiting},
	}

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrSlotOccupied)
	assert.Nil(t, repo.inserted)
	assert.Empty(t, notifier.events)
}

func TestExecute_UniqueIndexBackstop(t *testing.T) {
	// Проверка занятости прошла, но вставка упёрлась в уникальный индекс:
	// параллельная бронь успела раньше
	uc, repo, _, _ := newFixture(t)
	repo.insertErr = apptRepo.ErrSlotOccupied

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrSlotOccupied)
}

func TestExecute_PastDate(t *testing.T) {
	uc, _, _, _ := newFixture(t)

	req := validRequest(t)
	req.SelectedDate = time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPastDate)
}

func TestExecute_DateOutOfRange(t *testing.T) {
	uc, _, _, _ := newFixture(t)

	req := validRequest(t)
	req.SelectedDate = time.Date(2025, 7, 11, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateOutOfRange)
}

func TestExecute_PastSlotToday(t *testing.T) {
	uc, _, _, _ := newFixture(t)

	req := validRequest(t)
	req.SelectedDate = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	req.SelectedTime = slotTime(t, "9:30")

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPastSlot)
}

func TestExecute_TimeNotOnGrid(t *testing.T) {
	uc, _, _, _ := newFixture(t)

	req := validRequest(t)
	req.SelectedTime = slotTime(t, "10:15")

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_WorkflowStagesEnforced(t *testing.T) {
	uc, _, _, _ := newFixture(t)

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "empty service", mutate: func(r *Request) { r.ServiceType = "  " }},
		{name: "empty full name", mutate: func(r *Request) { r.FullName = "" }},
		{name: "empty phone", mutate: func(r *Request) { r.PhoneNumber = "  " }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(t)
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
