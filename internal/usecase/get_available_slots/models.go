package get_available_slots

import (
	"time"

	"github.com/danielnamimi665/barber-shop-web/internal/domain"
)

// Request модель запроса сетки слотов на дату
type Request struct {
	Date time.Time // Дата в пределах окна бронирования (без времени)
}

// Response модель ответа с классифицированной сеткой слотов
type Response struct {
	Date        time.Time     // Дата, на которую запрашивались слоты
	Slots       []domain.Slot // Полная дневная сетка с состояниями
	FullyBooked bool          // true, если ни один слот дня нельзя забронировать
}
