package schedule

import "errors"

var (
	// ErrInvalidSchedule возвращается при некорректной конфигурации рабочих часов
	// (непарсящееся время, открытие позже закрытия). Запрос отклоняется целиком,
	// частичный результат не возвращается
	ErrInvalidSchedule = errors.New("schedule: invalid operating hours configuration")
)
