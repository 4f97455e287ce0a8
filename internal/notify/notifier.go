// Package notify best-effort фан-аут изменений хранилища записей между
// открытыми сессиями. Событие — только сигнал обновиться: подписчики
// перечитывают данные из хранилища, payload никогда не считается
// источником истины. Гарантий доставки нет — пропущенное событие
// самовосстанавливается периодическим поллингом presentation-слоя.
package notify

import (
	"context"
	"time"
)

// Action тип изменения записи
type Action string

const (
	ActionCreated   Action = "created"
	ActionUpdated   Action = "updated"
	ActionCancelled Action = "cancelled"
)

// AppointmentPayload снимок записи в составе события
type AppointmentPayload struct {
	AppointmentID string `json:"appointmentId"`
	SelectedDate  string `json:"selectedDate"`
	SelectedTime  string `json:"selectedTime"`
	Status        string `json:"status"`
}

// Event событие изменения записи
type Event struct {
	Action      Action             `json:"action"`
	Appointment AppointmentPayload `json:"appointment"`
	Timestamp   time.Time          `json:"timestamp"`
}

// Notifier публикует события изменения записей.
// Publish обязан быть best-effort: ошибка публикации логируется на стороне
// реализации и не должна ронять операцию, которая её вызвала.
type Notifier interface {
	Publish(ctx context.Context, event Event)
}

// Subscriber источник событий для открытых сессий (SSE-эндпоинт)
type Subscriber interface {
	// Subscribe возвращает канал событий, закрываемый при отмене контекста
	Subscribe(ctx context.Context) (<-chan Event, error)
}

// Noop реализация-заглушка: уведомления отключены, клиенты живут на поллинге
type Noop struct{}

// Publish ничего не делает
func (Noop) Publish(context.Context, Event) {}
