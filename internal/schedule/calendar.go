package schedule

import (
	"fmt"
	"time"

	"github.com/m04kA/Restaurant-BookingService/internal/domain"
	"github.com/m04kA/Restaurant-BookingService/pkg/types"
)

// DayWindow окно работы ресторана на конкретный день
type DayWindow struct {
	Open  types.TimeString
	Close types.TimeString
}

// ResolveDay вычисляет окно работы ресторана на указанную дату
// Возвращает (окно, true, nil) если ресторан открыт, (_, false, nil) если закрыт
//
// Порядок разрешения:
//  1. День недели в списке закрытых дней настроек - закрыто
//  2. Недельное расписание содержит день с IsOpen=false - закрыто
//  3. Недельное расписание содержит день с часами - берем их
//  4. Недельного расписания нет - берем часы по умолчанию из настроек
//
// Единственная реализация календаря в системе: и доступность бронирований,
// и выбор времени самовывоза при заказе обязаны ходить сюда, чтобы два
// независимых места не разошлись в ответе на вопрос "когда ресторан открыт"
func ResolveDay(settings *domain.ReservationSettings, weekly *domain.WeeklySchedule, date time.Time) (DayWindow, bool, error) {
	weekday := date.Weekday()

	if settings.IsClosedWeekday(weekday) {
		return DayWindow{}, false, nil
	}

	openStr := settings.StartTime
	closeStr := settings.EndTime

	if weekly != nil {
		day := weekly.ForWeekday(weekday)
		if !day.IsOpen {
			return DayWindow{}, false, nil
		}
		if day.OpenTime == nil || day.CloseTime == nil {
			return DayWindow{}, false, fmt.Errorf("%w: weekday %s is open but has no hours", ErrInvalidSchedule, weekday)
		}
		openStr = *day.OpenTime
		closeStr = *day.CloseTime
	}

	open, err := types.NewTimeStringFromString(openStr)
	if err != nil {
		return DayWindow{}, false, fmt.Errorf("%w: open time: %v", ErrInvalidSchedule, err)
	}

	closeTime, err := types.NewTimeStringFromString(closeStr)
	if err != nil {
		return DayWindow{}, false, fmt.Errorf("%w: close time: %v", ErrInvalidSchedule, err)
	}

	if !open.IsBefore(closeTime) {
		return DayWindow{}, false, fmt.Errorf("%w: open %s is not before close %s", ErrInvalidSchedule, open, closeTime)
	}

	return DayWindow{Open: open, Close: closeTime}, true, nil
}
