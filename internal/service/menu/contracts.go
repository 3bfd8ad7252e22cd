package menu

import (
	"context"

	"github.com/m04kA/Restaurant-BookingService/internal/domain"
)

// MenuRepository интерфейс репозитория меню
type MenuRepository interface {
	List(ctx context.Context, onlyAvailable bool) ([]*domain.MenuItem, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
