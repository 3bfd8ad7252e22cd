package settings

import "errors"

var (
	// ErrInvalidSettings возвращается при некорректных значениях настроек
	ErrInvalidSettings = errors.New("invalid settings")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
