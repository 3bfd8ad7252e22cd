package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/Restaurant-BookingService/internal/domain"
	"github.com/m04kA/Restaurant-BookingService/pkg/ratelimit"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	GetWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// SettingsRepository интерфейс репозитория настроек
type SettingsRepository interface {
	GetSettings(ctx context.Context) (*domain.ReservationSettings, error)
	GetWeeklySchedule(ctx context.Context) (*domain.WeeklySchedule, error)
}

// MailSender интерфейс почтового клиента
// Вызывается fire-and-forget: ошибка отправки не влияет на результат бронирования
type MailSender interface {
	SendReservationConfirmation(ctx context.Context, res *domain.Reservation) error
}

// RateLimiter абстракция атомарного check-and-increment счетчика
type RateLimiter interface {
	Check(identifier string, maxRequests int, window time.Duration) ratelimit.Result
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
