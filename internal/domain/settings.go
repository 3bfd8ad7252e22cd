package domain

import "time"

// DaySchedule расписание работы ресторана на один день недели
// OpenTime/CloseTime в формате HH:MM; nil допустим только при IsOpen = false
type DaySchedule struct {
	IsOpen    bool
	OpenTime  *string
	CloseTime *string
}

// WeeklySchedule расписание работы ресторана по дням недели
type WeeklySchedule struct {
	Monday    DaySchedule
	Tuesday   DaySchedule
	Wednesday DaySchedule
	Thursday  DaySchedule
	Friday    DaySchedule
	Saturday  DaySchedule
	Sunday    DaySchedule
}

// ForWeekday возвращает расписание на указанный день недели
func (w *WeeklySchedule) ForWeekday(weekday time.Weekday) DaySchedule {
	switch weekday {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	case time.Sunday:
		return w.Sunday
	default:
		return DaySchedule{IsOpen: false}
	}
}

// ReservationSettings настройки бронирования ресторана
// Одна логическая запись; при отсутствии в БД используются дефолтные значения,
// система обязана работать без какой-либо настройки администратором
type ReservationSettings struct {
	ID                  int64
	StartTime           string // Время открытия по умолчанию (когда нет записи в weekly schedule)
	EndTime             string // Время закрытия по умолчанию
	SlotDurationMinutes int
	MaxTables           int // Максимум одновременно занятых столов (единиц вместимости)
	SeatsPerTable       int // Посадочных мест на стол для пересчета гостей в столы
	ClosedWeekdays      []time.Weekday
	MinAdvanceHours     int
	BookingWindowDays   int
	AutoConfirm         bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// IsClosedWeekday возвращает true, если день недели закрыт настройками
func (s *ReservationSettings) IsClosedWeekday(weekday time.Weekday) bool {
	for _, wd := range s.ClosedWeekdays {
		if wd == weekday {
			return true
		}
	}
	return false
}

// MinAdvanceMinutes возвращает минимальное время до бронирования в минутах
func (s *ReservationSettings) MinAdvanceMinutes() int {
	return s.MinAdvanceHours * 60
}

// DefaultReservationSettings возвращает настройки по умолчанию
// Значения зафиксированы: сервис должен быть работоспособен с нулевой конфигурацией
func DefaultReservationSettings() *ReservationSettings {
	return &ReservationSettings{
		StartTime:           DefaultOpenTime,
		EndTime:             DefaultCloseTime,
		SlotDurationMinutes: DefaultSlotDurationMinutes,
		MaxTables:           DefaultMaxTables,
		SeatsPerTable:       DefaultSeatsPerTable,
		ClosedWeekdays:      nil,
		MinAdvanceHours:     DefaultMinAdvanceHours,
		BookingWindowDays:   DefaultBookingWindowDays,
		AutoConfirm:         DefaultAutoConfirm,
	}
}
