package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/danielnamimi665/barber-shop-web/pkg/types"
)

var (
	// ErrServiceNotSelected возвращается при попытке пропустить этап выбора услуги
	ErrServiceNotSelected = errors.New("draft: service type is not selected")

	// ErrSlotNotSelected возвращается при попытке пропустить этап выбора даты и времени
	ErrSlotNotSelected = errors.New("draft: date and time are not selected")

	// ErrContactMissing возвращается, когда не заполнены контактные данные
	ErrContactMissing = errors.New("draft: full name and phone number are required")

	// ErrEmptyServiceType возвращается при пустом названии услуги
	ErrEmptyServiceType = errors.New("draft: service type must not be empty")
)

// BookingDraft незавершённая бронь, проходящая этапы оформления:
// услуга → дата/время → контактные данные → подтверждение.
// Состояние живёт на стороне вызывающего (presentation layer);
// воркфлоу лишь гарантирует, что этапы не перескакиваются, а возврат
// на ранний этап сбрасывает всё, что было выбрано после него.
type BookingDraft struct {
	serviceType string

	dateSet      bool
	selectedDate time.Time
	timeSet      bool
	selectedTime types.TimeString

	fullName    string
	phoneNumber string
}

// SelectService этап 1: выбор услуги.
// Повторный выбор услуги сбрасывает дату, время и контакты.
func (d *BookingDraft) SelectService(serviceType string) error {
	serviceType = strings.TrimSpace(serviceType)
	if serviceType == "" {
		return ErrEmptyServiceType
	}

	d.serviceType = serviceType
	d.clearSlot()
	d.clearContact()
	return nil
}

// SelectDate этап 2a: выбор даты. Сбрасывает выбранное время и контакты.
func (d *BookingDraft) SelectDate(date time.Time) error {
	if d.serviceType == "" {
		return ErrServiceNotSelected
	}

	d.selectedDate = date
	d.dateSet = true
	d.timeSet = false
	d.clearContact()
	return nil
}

// SelectTime этап 2b: выбор времени в рамках выбранной даты
func (d *BookingDraft) SelectTime(t types.TimeString) error {
	if !d.dateSet {
		return ErrSlotNotSelected
	}

	d.selectedTime = t
	d.timeSet = true
	d.clearContact()
	return nil
}

// SetContact этап 3: контактные данные
func (d *BookingDraft) SetContact(fullName, phoneNumber string) error {
	if !d.dateSet || !d.timeSet {
		return ErrSlotNotSelected
	}

	fullName = strings.TrimSpace(fullName)
	phoneNumber = strings.TrimSpace(phoneNumber)
	if fullName == "" || phoneNumber == "" {
		return ErrContactMissing
	}

	d.fullName = fullName
	d.phoneNumber = phoneNumber
	return nil
}

// Complete этап 4: проверяет, что все этапы пройдены, и возвращает
// собранные поля будущей записи. ID, статус и таймстемпы проставляет
// usecase подтверждения.
func (d *BookingDraft) Complete() (serviceType string, date time.Time, t types.TimeString, fullName, phoneNumber string, err error) {
	if d.serviceType == "" {
		err = ErrServiceNotSelected
		return
	}
	if !d.dateSet || !d.timeSet {
		err = ErrSlotNotSelected
		return
	}
	if d.fullName == "" || d.phoneNumber == "" {
		err = ErrContactMissing
		return
	}

	return d.serviceType, d.selectedDate, d.selectedTime, d.fullName, d.phoneNumber, nil
}

// HasSlot возвращает true, если дата и время выбраны
func (d *BookingDraft) HasSlot() bool {
	return d.dateSet && d.timeSet
}

func (d *BookingDraft) clearSlot() {
	d.dateSet = false
	d.timeSet = false
	d.selectedDate = time.Time{}
	d.selectedTime = types.TimeString{}
}

func (d *BookingDraft) clearContact() {
	d.fullName = ""
	d.phoneNumber = ""
}
