package models

import (
	"time"

	"github.com/m04kA/Restaurant-BookingService/internal/domain"
)

// OrderResponse ответ с данными заказа
// Все суммы - серверные, зафиксированные на момент создания заказа
type OrderResponse struct {
	OrderNumber string `json:"orderNumber"`
	Type        string `json:"type"`
	Status      string `json:"status"`

	CustomerName string `json:"customerName"`

	DeliveryAddress *string `json:"deliveryAddress,omitempty"`
	PickupTime      *string `json:"pickupTime,omitempty"`

	Lines    []domain.OrderLine `json:"lines"`
	Subtotal float64            `json:"subtotal"`
	Tax      float64            `json:"tax"`
	Total    float64            `json:"total"`

	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromDomainOrder конвертирует domain модель в DTO
func FromDomainOrder(o *domain.Order) *OrderResponse {
	if o == nil {
		return nil
	}

	resp := &OrderResponse{
		OrderNumber:     o.OrderNumber,
		Type:            string(o.Type),
		Status:          string(o.Status),
		CustomerName:    o.CustomerName,
		DeliveryAddress: o.DeliveryAddress,
		Lines:           o.Lines,
		Subtotal:        o.Subtotal,
		Tax:             o.Tax,
		Total:           o.Total,
		Notes:           o.Notes,
		CreatedAt:       o.CreatedAt,
	}

	if o.PickupTime != nil {
		pickup := o.PickupTime.String()
		resp.PickupTime = &pickup
	}

	return resp
}
