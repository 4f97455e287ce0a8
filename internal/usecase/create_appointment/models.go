package create_appointment

import (
	"time"

	"github.com/danielnamimi665/barber-shop-web/pkg/types"
)

// Request модель запроса на подтверждение брони.
// Поля повторяют этапы оформления: услуга, дата/время, контактные данные.
type Request struct {
	UserID       string           // Opaque ID пользователя из auth-провайдера
	ServiceType  string           // Этап 1: услуга
	SelectedDate time.Time        // Этап 2: дата (без времени)
	SelectedTime types.TimeString // Этап 2: метка слота ("9:00")
	FullName     string           // Этап 3: имя
	PhoneNumber  string           // Этап 3: телефон
}

// Response модель ответа с подтверждённой записью
type Response struct {
	ID            string           // Сгенерированный ID записи
	UserID        string           // ID пользователя
	SelectedDate  time.Time        // Дата записи
	SelectedTime  types.TimeString // Метка слота
	FullName      string           // Имя клиента
	PhoneNumber   string           // Телефон клиента
	ServiceType   string           // Услуга
	Confirmed     bool             // Всегда true после подтверждения
	Status        string           // Всегда "waiting" сразу после создания
	AppointmentAt time.Time        // UTC-инстант начала слота
	CreatedAt     time.Time        // UTC-инстант подтверждения
}
