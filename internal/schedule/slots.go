package schedule

import (
	"time"

	"github.com/m04kA/Restaurant-BookingService/internal/domain"
	"github.com/m04kA/Restaurant-BookingService/pkg/types"
)

// GenerateDaySlots генерирует кандидатов-слотов на один день
// Слоты идут с фиксированным шагом slotMinutes от открытия до закрытия;
// слот не эмитится, если его конец выходит за время закрытия
//
// Для сегодняшней даты первый слот не раньше now + leadMinutes, округленного
// ВВЕРХ до кратного шагу слота (now=10:07, lead=20, шаг 15 -> 10:30).
// Для будущих дат отсчет идет от открытия.
//
// Результат - чистая функция аргументов: повторный вызов с теми же входными
// данными дает идентичную последовательность, скрытого курсора нет.
// Доступность и вместимость здесь не выставляются (см. AnnotateSlots)
func GenerateDaySlots(window DayWindow, slotMinutes int, date, now time.Time, leadMinutes int) []domain.TimeSlot {
	slots := make([]domain.TimeSlot, 0)

	// Некорректная длительность - генерация останавливается, а не зависает
	if slotMinutes <= 0 {
		return slots
	}

	if isDateInPast(date, now) {
		return slots
	}

	earliest := types.TimeString("")
	if isSameDay(date, now) {
		minutes := now.Hour()*60 + now.Minute() + leadMinutes
		minutes = roundUpToStep(minutes, slotMinutes)
		if minutes >= 24*60 {
			// Сегодня уже не осталось допустимого времени
			return slots
		}
		earliest = minutesToTime(minutes)
	}

	current := window.Open
	for steps := 0; steps < domain.MaxSlotsPerDay; steps++ {
		slotEnd, err := current.AddMinutes(slotMinutes)
		if err != nil || slotEnd.IsAfter(window.Close) {
			break
		}

		if earliest.IsZero() || !current.IsBefore(earliest) {
			slots = append(slots, domain.TimeSlot{
				Date:            date,
				StartTime:       current,
				DurationMinutes: slotMinutes,
			})
		}

		current = slotEnd
	}

	return slots
}

// GenerateHorizon генерирует кандидатов-слотов на горизонт [сегодня, сегодня+horizonDays)
// Закрытые дни пропускаются; ошибка конфигурации расписания отклоняет весь запрос
func GenerateHorizon(
	settings *domain.ReservationSettings,
	weekly *domain.WeeklySchedule,
	now time.Time,
	horizonDays int,
	leadMinutes int,
) ([]domain.TimeSlot, error) {
	slots := make([]domain.TimeSlot, 0)

	for i := 0; i < horizonDays; i++ {
		date := startOfDay(now).AddDate(0, 0, i)

		window, open, err := ResolveDay(settings, weekly, date)
		if err != nil {
			return nil, err
		}
		if !open {
			continue
		}

		slots = append(slots, GenerateDaySlots(window, settings.SlotDurationMinutes, date, now, leadMinutes)...)
	}

	return slots, nil
}

// roundUpToStep округляет minutes вверх до ближайшего кратного step
func roundUpToStep(minutes, step int) int {
	if minutes%step == 0 {
		return minutes
	}
	return (minutes/step + 1) * step
}

func minutesToTime(minutes int) types.TimeString {
	t := time.Date(0, 1, 1, minutes/60, minutes%60, 0, 0, time.UTC)
	return types.NewTimeString(t)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	return startOfDay(date).Before(startOfDay(now))
}
