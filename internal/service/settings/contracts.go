package settings

import (
	"context"

	"github.com/m04kA/Restaurant-BookingService/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек
type SettingsRepository interface {
	GetSettings(ctx context.Context) (*domain.ReservationSettings, error)
	UpsertSettings(ctx context.Context, s *domain.ReservationSettings) (*domain.ReservationSettings, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
