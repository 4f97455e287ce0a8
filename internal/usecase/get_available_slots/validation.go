package get_available_slots

import (
	"fmt"
	"time"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
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
