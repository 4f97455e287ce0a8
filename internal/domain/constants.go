package domain

// Default schedule values
const (
	DefaultTimezone            = "Asia/Jerusalem"
	DefaultOpenTime            = "9:00"
	DefaultCloseTime           = "18:00"
	DefaultSlotDurationMinutes = 30
	DefaultBookingWindowDays   = 30
)

// Business validation constants
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 240
	MinBookingWindowDays   = 1
	MaxBookingWindowDays   = 365
	MaxFullNameLength      = 100
	MaxPhoneNumberLength   = 30
	MaxServiceTypeLength   = 100
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
