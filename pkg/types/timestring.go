package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidTimeString возвращается при некорректном формате строки времени
	ErrInvalidTimeString = errors.New("invalid time string format")
)

// TimeString время начала слота в пределах дня ("9:00", "17:30").
// Хранится как часы и минуты, без даты и часового пояса.
// String() возвращает формат без ведущего нуля в часах — именно такие
// метки слотов отдаются клиенту и хранятся в БД.
type TimeString struct {
	hour   int
	minute int
	set    bool
}

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString{hour: t.Hour(), minute: t.Minute(), set: true}
}

// NewTimeStringFromString парсит строку вида "9:00" или "09:00"
func NewTimeStringFromString(s string) (TimeString, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	ts := TimeString{hour: hour, minute: minute, set: true}
	if err := ts.Validate(); err != nil {
		return TimeString{}, err
	}

	return ts, nil
}

// Validate проверяет, что часы и минуты в допустимых пределах
func (t TimeString) Validate() error {
	if t.hour < 0 || t.hour > 23 || t.minute < 0 || t.minute > 59 {
		return fmt.Errorf("%w: %d:%02d", ErrInvalidTimeString, t.hour, t.minute)
	}
	return nil
}

// IsZero возвращает true, если время не было установлено
func (t TimeString) IsZero() bool {
	return !t.set
}

// String возвращает строковое представление без ведущего нуля ("9:00", "17:30")
func (t TimeString) String() string {
	return fmt.Sprintf("%d:%02d", t.hour, t.minute)
}

// Hour возвращает часы
func (t TimeString) Hour() int {
	return t.hour
}

// Minute возвращает минуты
func (t TimeString) Minute() int {
	return t.minute
}

// TotalMinutes возвращает число минут с начала дня
func (t TimeString) TotalMinutes() int {
	return t.hour*60 + t.minute
}

// AddMinutes возвращает новое время, сдвинутое на minutes минут вперед.
// Выход за границу суток считается ошибкой — слоты не пересекают полночь.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total := t.TotalMinutes() + minutes
	if total < 0 || total >= 24*60 {
		return TimeString{}, fmt.Errorf("%w: %s + %d minutes is out of day range", ErrInvalidTimeString, t, minutes)
	}
	return TimeString{hour: total / 60, minute: total % 60, set: true}, nil
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.TotalMinutes() < other.TotalMinutes()
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.TotalMinutes() > other.TotalMinutes()
}

// Equal возвращает true, если времена совпадают
func (t TimeString) Equal(other TimeString) bool {
	return t.TotalMinutes() == other.TotalMinutes()
}
