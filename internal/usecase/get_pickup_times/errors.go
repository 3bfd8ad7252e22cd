package get_pickup_times

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_pickup_times: invalid input data")

	// ErrInvalidDate возвращается для даты в прошлом
	ErrInvalidDate = errors.New("get_pickup_times: invalid date")

	// ErrInvalidConfig возвращается при некорректной конфигурации рабочих часов
	ErrInvalidConfig = errors.New("get_pickup_times: invalid operating hours configuration")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_pickup_times: internal error")
)
