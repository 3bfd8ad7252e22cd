package create_order

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrRateLimited возвращается при превышении лимита запросов для идентификатора
	ErrRateLimited = errors.New("create_order: rate limit exceeded")

	// ErrValidation возвращается при ошибках валидации полей запроса
	ErrValidation = errors.New("create_order: validation failed")

	// ErrItemNotFound возвращается, когда позиция заказа отсутствует в меню
	ErrItemNotFound = errors.New("create_order: menu item not found")

	// ErrItemUnavailable возвращается, когда позиция заказа недоступна
	ErrItemUnavailable = errors.New("create_order: menu item is unavailable")

	// ErrInvalidPickupTime возвращается, когда время самовывоза вне рабочих часов
	ErrInvalidPickupTime = errors.New("create_order: invalid pickup time")

	// ErrRestaurantClosed возвращается, когда ресторан закрыт в день заказа
	ErrRestaurantClosed = errors.New("create_order: restaurant is closed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_order: invalid input data")

	// ErrInvalidConfig возвращается при некорректной конфигурации рабочих часов
	ErrInvalidConfig = errors.New("create_order: invalid operating hours configuration")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_order: internal error")
)

// FieldError ошибка валидации конкретного поля
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError ошибка валидации с пополевой детализацией
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
