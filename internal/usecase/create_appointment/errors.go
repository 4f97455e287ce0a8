package create_appointment

import "errors"

var (
	// ErrSlotOccupied возвращается, когда слот уже занят другой активной записью.
	// Клиент должен вернуться к выбору времени с обновлённой доступностью.
	ErrSlotOccupied = errors.New("create_appointment: slot is already occupied")

	// ErrPastDate возвращается, когда дата записи уже прошла
	ErrPastDate = errors.New("create_appointment: date is in the past")

	// ErrPastSlot возвращается, когда слот сегодняшнего дня уже наступил
	ErrPastSlot = errors.New("create_appointment: time slot is in the past")

	// ErrDateOutOfRange возвращается, когда дата вне окна бронирования
	ErrDateOutOfRange = errors.New("create_appointment: date is out of booking window")

	// ErrInvalidTimeSlot возвращается, когда время не принадлежит сетке слотов
	ErrInvalidTimeSlot = errors.New("create_appointment: time is not on the slot grid")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
