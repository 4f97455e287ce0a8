package create_appointment

import (
	"fmt"
	"time"

	"github.com/danielnamimi665/barber-shop-web/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SelectedDate.IsZero() {
		return fmt.Errorf("%w: selectedDate is required", ErrInvalidInput)
	}

	if req.SelectedTime.IsZero() {
		return fmt.Errorf("%w: selectedTime is required", ErrInvalidInput)
	}

	if err := req.SelectedTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid selectedTime: %v", ErrInvalidInput, err)
	}

	if len(req.FullName) > domain.MaxFullNameLength {
		return fmt.Errorf("%w: fullName is too long", ErrInvalidInput)
	}

	if len(req.PhoneNumber) > domain.MaxPhoneNumberLength {
		return fmt.Errorf("%w: phoneNumber is too long", ErrInvalidInput)
	}

	if len(req.ServiceType) > domain.MaxServiceTypeLength {
		return fmt.Errorf("%w: serviceType is too long", ErrInvalidInput)
	}

	return nil
}

// validateDateWindow проверяет, что дата попадает в окно бронирования
// [сегодня, сегодня+windowDays] включительно
func validateDateWindow(date time.Time, today time.Time, windowDays int) error {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, today.Location())

	if dateOnly.Before(today) {
		return ErrPastDate
	}

	maxDate := today.AddDate(0, 0, windowDays)
	if dateOnly.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateOutOfRange, windowDays)
	}

	return nil
}
