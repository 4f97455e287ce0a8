package get_available_slots

import "errors"

var (
	// ErrPastDate возвращается, когда запрошенная дата уже прошла
	ErrPastDate = errors.New("get_available_slots: date is in the past")

	// ErrDateOutOfRange возвращается, когда дата вне окна бронирования
	ErrDateOutOfRange = errors.New("get_available_slots: date is out of booking window")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
