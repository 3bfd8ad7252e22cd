package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInvalidDate возвращается для даты в прошлом
	ErrInvalidDate = errors.New("get_available_slots: invalid date")

	// ErrDateTooFarInFuture возвращается, когда дата за пределами окна бронирования
	ErrDateTooFarInFuture = errors.New("get_available_slots: date is outside the booking window")

	// ErrInvalidConfig возвращается при некорректной конфигурации рабочих часов
	// Запрос отклоняется целиком, частичный список слотов не возвращается
	ErrInvalidConfig = errors.New("get_available_slots: invalid operating hours configuration")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
