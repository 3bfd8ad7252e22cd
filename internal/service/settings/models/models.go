package models

import (
	"time"

	"github.com/m04kA/Restaurant-BookingService/internal/domain"
)

// UpdateSettingsRequest запрос на обновление настроек бронирования (администратор)
type UpdateSettingsRequest struct {
	StartTime           string `json:"startTime"` // "11:00"
	EndTime             string `json:"endTime"`   // "21:00"
	SlotDurationMinutes int    `json:"slotDurationMinutes"`
	MaxTables           int    `json:"maxTables"`
	SeatsPerTable       int    `json:"seatsPerTable"`
	ClosedWeekdays      []int  `json:"closedWeekdays"` // 0 = воскресенье ... 6 = суббота
	MinAdvanceHours     int    `json:"minAdvanceHours"`
	BookingWindowDays   int    `json:"bookingWindowDays"`
	AutoConfirm         bool   `json:"autoConfirm"`
}

// ToDomainSettings конвертирует request в domain модель
func (r *UpdateSettingsRequest) ToDomainSettings() *domain.ReservationSettings {
	closed := make([]time.Weekday, 0, len(r.ClosedWeekdays))
	for _, wd := range r.ClosedWeekdays {
		closed = append(closed, time.Weekday(wd))
	}

	return &domain.ReservationSettings{
		StartTime:           r.StartTime,
		EndTime:             r.EndTime,
		SlotDurationMinutes: r.SlotDurationMinutes,
		MaxTables:           r.MaxTables,
		SeatsPerTable:       r.SeatsPerTable,
		ClosedWeekdays:      closed,
		MinAdvanceHours:     r.MinAdvanceHours,
		BookingWindowDays:   r.BookingWindowDays,
		AutoConfirm:         r.AutoConfirm,
	}
}

// SettingsResponse ответ с настройками бронирования
type SettingsResponse struct {
	StartTime           string `json:"startTime"`
	EndTime             string `json:"endTime"`
	SlotDurationMinutes int    `json:"slotDurationMinutes"`
	MaxTables           int    `json:"maxTables"`
	SeatsPerTable       int    `json:"seatsPerTable"`
	ClosedWeekdays      []int  `json:"closedWeekdays"`
	MinAdvanceHours     int    `json:"minAdvanceHours"`
	BookingWindowDays   int    `json:"bookingWindowDays"`
	AutoConfirm         bool   `json:"autoConfirm"`
}

// FromDomainSettings конвертирует domain модель в DTO
func FromDomainSettings(s *domain.ReservationSettings) *SettingsResponse {
	if s == nil {
		return nil
	}

	closed := make([]int, 0, len(s.ClosedWeekdays))
	for _, wd := range s.ClosedWeekdays {
		closed = append(closed, int(wd))
	}

	return &SettingsResponse{
		StartTime:           s.StartTime,
		EndTime:             s.EndTime,
		SlotDurationMinutes: s.SlotDurationMinutes,
		MaxTables:           s.MaxTables,
		SeatsPerTable:       s.SeatsPerTable,
		ClosedWeekdays:      closed,
		MinAdvanceHours:     s.MinAdvanceHours,
		BookingWindowDays:   s.BookingWindowDays,
		AutoConfirm:         s.AutoConfirm,
	}
}
