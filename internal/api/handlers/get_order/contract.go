package get_order

import (
	"context"

	orderModels "github.com/m04kA/Restaurant-BookingService/internal/service/orders/models"
)

type OrderService interface {
	GetByNumber(ctx context.Context, orderNumber string) (*orderModels.OrderResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
