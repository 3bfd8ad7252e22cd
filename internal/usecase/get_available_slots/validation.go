package get_available_slots

import (
	"fmt"
	"time"
)

// validateDate проверяет, что дата не в прошлом и внутри окна бронирования
func validateDate(date time.Time, now time.Time, bookingWindowDays int) error {
	dateOnly := startOfDay(date)
	nowOnly := startOfDay(now)

	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}

	maxDate := nowOnly.AddDate(0, 0, bookingWindowDays)
	if dateOnly.After(maxDate) {
		return fmt.Errorf("%w: can only view %d days in advance", ErrDateTooFarInFuture, bookingWindowDays)
	}

	return nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
