package pricing

import "errors"

var (
	// ErrItemNotFound возвращается, когда позиция заказа отсутствует в каталоге меню
	ErrItemNotFound = errors.New("pricing: menu item not found")

	// ErrItemUnavailable возвращается, когда позиция есть в каталоге, но помечена недоступной
	// Заказ отклоняется целиком, частично посчитанный заказ не возвращается
	ErrItemUnavailable = errors.New("pricing: menu item is unavailable")

	// ErrInvalidQuantity возвращается при количестве вне границ 1-99
	ErrInvalidQuantity = errors.New("pricing: invalid line quantity")

	// ErrInvalidLineCount возвращается при пустом заказе или более чем 50 строках
	ErrInvalidLineCount = errors.New("pricing: invalid number of order lines")
)
