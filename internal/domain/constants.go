package domain

// Default configuration values
// Сервис обязан работать без настройки администратором, поэтому дефолты жестко зафиксированы
const (
	DefaultOpenTime            = "11:00"
	DefaultCloseTime           = "21:00"
	DefaultSlotDurationMinutes = 30
	DefaultMaxTables           = 15
	DefaultSeatsPerTable       = 4
	DefaultMinAdvanceHours     = 2
	DefaultBookingWindowDays   = 30
	DefaultAutoConfirm         = false
)

// Business validation constants
const (
	MinPartySize = 1
	MaxPartySize = 20

	MinQuantityPerLine = 1
	MaxQuantityPerLine = 99
	MinOrderLines      = 1
	MaxOrderLines      = 50

	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480 // 8 hours
	MinTablesLimit         = 1
	MaxTablesLimit         = 200
	MinBookingWindowDays   = 1
	MaxBookingWindowDays   = 365 // 1 year
	MinAdvanceHoursLimit   = 0
	MaxAdvanceHoursLimit   = 168 // 1 week

	MaxNotesLength = 500

	// MaxSlotsPerDay предохранитель генератора слотов: при некорректной
	// (нулевой/отрицательной) длительности слота генерация останавливается,
	// а не зависает
	MaxSlotsPerDay = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы бронирований, занимающих вместимость
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
}

// InactiveStatuses статусы бронирований, не учитываемых при подсчете занятости
var InactiveStatuses = []ReservationStatus{
	StatusCancelled,
	StatusCompleted,
}
