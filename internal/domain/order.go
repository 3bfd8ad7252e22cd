package domain

import (
	"time"

	"github.com/m04kA/Restaurant-BookingService/pkg/types"
)

// OrderType тип заказа
type OrderType string

const (
	OrderTypeDelivery OrderType = "delivery"
	OrderTypePickup   OrderType = "pickup"
)

// IsValid returns true if the order type is known
func (t OrderType) IsValid() bool {
	return t == OrderTypeDelivery || t == OrderTypePickup
}

// OrderStatus статус заказа
type OrderStatus string

const (
	OrderStatusReceived  OrderStatus = "received"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderLine строка заказа с зафиксированной серверной ценой
type OrderLine struct {
	MenuItemID     int64    `json:"menuItemId"`
	Name           string   `json:"name"`
	Quantity       int      `json:"quantity"`
	UnitPrice      float64  `json:"unitPrice"` // Цена из каталога на момент заказа
	LineTotal      float64  `json:"lineTotal"`
	Customizations []string `json:"customizations,omitempty"`
}

// Order заказ с серверным расчетом стоимости
// Subtotal/Tax/Total вычисляются только ценовым движком - никакое другое место
// в системе не считает деньги
type Order struct {
	ID          int64
	OrderNumber string
	Type        OrderType
	Status      OrderStatus

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	DeliveryAddress *string           // Обязателен для delivery
	PickupTime      *types.TimeString // Обязателен для pickup

	Lines    []OrderLine
	Subtotal float64
	Tax      float64
	Total    float64

	Notes *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
