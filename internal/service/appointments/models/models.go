package models

import (
	"time"

	"github.com/danielnamimi665/barber-shop-web/internal/domain"
)

// Request модели

// UpdateStatusRequest запрос на смену статуса записи
type UpdateStatusRequest struct {
	AppointmentID string `json:"appointmentId"`
	Status        string `json:"status"`
}

// CancelRequest запрос на самостоятельную отмену записи клиентом
type CancelRequest struct {
	AppointmentID string `json:"appointmentId"`
	UserID        string `json:"userId"` // пустой для админских отмен
}

// StatusChange одна запись пакета админских правок
type StatusChange struct {
	AppointmentID string `json:"appointmentId"`
	Status        string `json:"status"`
}

// SaveAllRequest пакет отложенных правок статусов, коммитится целиком
type SaveAllRequest struct {
	Changes []StatusChange `json:"changes"`
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	AppointmentID string `json:"appointmentId"`
	UserID        string `json:"userId,omitempty"`
	SelectedDate  string `json:"selectedDate"` // "2025-06-10"
	SelectedTime  string `json:"selectedTime"` // "9:00"
	FullName      string `json:"fullName"`
	PhoneNumber   string `json:"phoneNumber"`
	ServiceType   string `json:"serviceType"`
	Confirmed     bool   `json:"confirmed"`
	Status        string `json:"status"`

	AppointmentAt time.Time `json:"appointmentAt"`
	CreatedAt     time.Time `json:"createdAt"`
}

// GroupedAppointmentsResponse содержимое хранилища, сгруппированное по датам.
// Формат повторяет персистентный документ: ключ — дата, значение — записи
// этой даты в порядке создания.
type GroupedAppointmentsResponse struct {
	Appointments map[string][]AppointmentResponse `json:"appointments"`
}

// AppointmentListResponse плоский список записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// SaveAllResponse результат пакетного коммита
type SaveAllResponse struct {
	Updated  int      `json:"updated"`  // записей со сменённым статусом
	Removed  int      `json:"removed"`  // записей, удалённых отменой
	Purged   int64    `json:"purged"`   // отменённых записей, вычищенных после коммита
	NotFound []string `json:"notFound"` // ID, исчезнувшие до коммита (устаревший стейт админки)
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		AppointmentID: a.ID,
		UserID:        a.UserID,
		SelectedDate:  a.SelectedDate.Format(domain.DateFormat),
		SelectedTime:  a.SelectedTime.String(),
		FullName:      a.FullName,
		PhoneNumber:   a.PhoneNumber,
		ServiceType:   a.ServiceType,
		Confirmed:     a.Confirmed,
		Status:        string(a.Status),
		AppointmentAt: a.AppointmentAt,
		CreatedAt:     a.CreatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, appt := range appointments {
		if dto := FromDomainAppointment(appt); dto != nil {
			resp.Appointments = append(resp.Appointments, *dto)
		}
	}

	return resp
}

// GroupByDate группирует записи по ключу даты, сохраняя порядок внутри дат
func GroupByDate(appointments []*domain.Appointment) *GroupedAppointmentsResponse {
	grouped := make(map[string][]AppointmentResponse)

	for _, appt := range appointments {
		dto := FromDomainAppointment(appt)
		if dto == nil {
			continue
		}
		grouped[dto.SelectedDate] = append(grouped[dto.SelectedDate], *dto)
	}

	return &GroupedAppointmentsResponse{Appointments: grouped}
}
