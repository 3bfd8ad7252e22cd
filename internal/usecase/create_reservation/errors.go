package create_reservation

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrRateLimited возвращается при превышении лимита запросов для идентификатора
	ErrRateLimited = errors.New("create_reservation: rate limit exceeded")

	// ErrNotInFuture возвращается, когда запрошенное время не строго в будущем
	ErrNotInFuture = errors.New("create_reservation: requested time is not in the future")

	// ErrTooLateToBook возвращается при нарушении минимального времени до бронирования
	ErrTooLateToBook = errors.New("create_reservation: minimum advance time violated")

	// ErrWindowExceeded возвращается, когда дата за пределами окна бронирования
	ErrWindowExceeded = errors.New("create_reservation: booking window exceeded")

	// ErrValidation возвращается при ошибках валидации полей запроса
	ErrValidation = errors.New("create_reservation: validation failed")

	// ErrRestaurantClosed возвращается, когда ресторан закрыт в указанную дату
	ErrRestaurantClosed = errors.New("create_reservation: restaurant is closed on this date")

	// ErrInvalidTimeSlot возвращается, когда время не попадает в сетку слотов рабочих часов
	ErrInvalidTimeSlot = errors.New("create_reservation: invalid time slot")

	// ErrSlotNotAvailable возвращается, когда на слот не осталось свободных столов
	ErrSlotNotAvailable = errors.New("create_reservation: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInvalidConfig возвращается при некорректной конфигурации рабочих часов
	ErrInvalidConfig = errors.New("create_reservation: invalid operating hours configuration")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)

// FieldError ошибка валидации конкретного поля
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError ошибка валидации с пополевой детализацией
// Каждое отклонение содержит достаточно информации для конкретного сообщения
// пользователю, а не общего "что-то пошло не так"
type ValidationError struct {
	Fields []FieldError
}

// Error реализует интерфейс error
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return fmt.Sprintf("%v: [%s]", ErrValidation, strings.Join(parts, "; "))
}

// Is позволяет матчить ValidationError через errors.Is(err, ErrValidation)
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
