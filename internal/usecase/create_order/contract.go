package create_order

import (
	"context"
	"time"

	"github.com/m04kA/Restaurant-BookingService/internal/domain"
	"github.com/m04kA/Restaurant-BookingService/pkg/ratelimit"
)

// OrderRepository интерфейс репозитория заказов
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) (*domain.Order, error)
}

// MenuRepository интерфейс репозитория меню
// GetByIDs возвращает снимок каталога: весь заказ считается по одному чтению
type MenuRepository interface {
	GetByIDs(ctx context.Context, ids []int64) (domain.MenuCatalog, error)
}

// SettingsRepository интерфейс репозитория настроек
type SettingsRepository interface {
	GetSettings(ctx context.Context) (*domain.ReservationSettings, error)
	GetWeeklySchedule(ctx context.Context) (*domain.WeeklySchedule, error)
}

// MailSender интерфейс почтового клиента
type MailSender interface {
	SendOrderReceipt(ctx context.Context, o *domain.Order) error
}

// RateLimiter абстракция атомарного check-and-increment счетчика
type RateLimiter interface {
	Check(identifier string, maxRequests int, window time.Duration) ratelimit.Result
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
