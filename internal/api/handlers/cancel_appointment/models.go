package cancel_appointment

import "github.com/danielnamimi665/barber-shop-web/internal/service/appointments/models"

// CancelAppointmentRequest HTTP request model.
// Клиент вместе с ID присылает дату и слот отменяемой записи; сервер
// идентифицирует запись только по ID, слотовые поля принимаются как есть.
type CancelAppointmentRequest struct {
	AppointmentID string `json:"appointmentId"`
	SelectedDate  string `json:"selectedDate,omitempty"`
	SelectedTime  string `json:"selectedTime,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса.
// Для администратора ownership-проверка отключается пустым userID.
func (r *CancelAppointmentRequest) ToServiceRequest(userID string, isAdmin bool) *models.CancelRequest {
	if isAdmin {
		userID = ""
	}

	return &models.CancelRequest{
		AppointmentID: r.AppointmentID,
		UserID:        userID,
	}
}
