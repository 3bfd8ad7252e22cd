package create_order

import (
	"time"

	"github.com/m04kA/Restaurant-BookingService/internal/domain"
	"github.com/m04kA/Restaurant-BookingService/pkg/types"
)

// RequestLine строка заказа из запроса клиента
// Price принимается, но игнорируется: авторитетный источник цен - каталог меню
type RequestLine struct {
	MenuItemID     int64
	Quantity       int
	Price          float64
	Customizations []string
}

// Request модель запроса на создание заказа
type Request struct {
	Type          domain.OrderType
	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	DeliveryAddress *string           // Обязателен для delivery
	PickupTime      *types.TimeString // Обязателен для pickup

	Lines []RequestLine
	Notes *string

	ClientIP string
}

// Response модель ответа с созданным заказом
// Все суммы - серверные, присланные клиентом цены в ответ не попадают
type Response struct {
	ID          int64
	OrderNumber string
	Type        string
	Status      string

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	DeliveryAddress *string
	PickupTime      *types.TimeString

	Lines    []domain.OrderLine
	Subtotal float64
	Tax      float64
	Total    float64

	Notes     *string
	CreatedAt time.Time
}
