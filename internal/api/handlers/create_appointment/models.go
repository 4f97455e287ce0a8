package create_appointment

import (
	"time"

	"github.com/danielnamimi665/barber-shop-web/internal/domain"
	createAppointment "github.com/danielnamimi665/barber-shop-web/internal/usecase/create_appointment"
	"github.com/danielnamimi665/barber-shop-web/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ServiceType  string `json:"serviceType"`
	SelectedDate string `json:"selectedDate"` // "2025-06-10"
	SelectedTime string `json:"selectedTime"` // "9:00"
	FullName     string `json:"fullName"`
	PhoneNumber  string `json:"phoneNumber"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	AppointmentID string `json:"appointmentId"`
	SelectedDate  string `json:"selectedDate"`
	SelectedTime  string `json:"selectedTime"`
	FullName      string `json:"fullName"`
	PhoneNumber   string `json:"phoneNumber"`
	ServiceType   string `json:"serviceType"`
	Confirmed     bool   `json:"confirmed"`
	Status        string `json:"status"`
	AppointmentAt string `json:"appointmentAt"`
	CreatedAt     string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(userID string) (*createAppointment.Request, error) {
	selectedDate, err := time.Parse(domain.DateFormat, r.SelectedDate)
	if err != nil {
		return nil, err
	}

	selectedTime, err := types.NewTimeStringFromString(r.SelectedTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		UserID:       userID,
		ServiceType:  r.ServiceType,
		SelectedDate: selectedDate,
		SelectedTime: selectedTime,
		FullName:     r.FullName,
		PhoneNumber:  r.PhoneNumber,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		AppointmentID: resp.ID,
		SelectedDate:  resp.SelectedDate.Format(domain.DateFormat),
		SelectedTime:  resp.SelectedTime.String(),
		FullName:      resp.FullName,
		PhoneNumber:   resp.PhoneNumber,
		ServiceType:   resp.ServiceType,
		Confirmed:     resp.Confirmed,
		Status:        resp.Status,
		AppointmentAt: resp.AppointmentAt.Format(time.RFC3339),
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
