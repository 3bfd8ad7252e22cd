package create_order

import (
	"time"

	"github.com/m04kA/Restaurant-BookingService/internal/domain"
	createOrder "github.com/m04kA/Restaurant-BookingService/internal/usecase/create_order"
	"github.com/m04kA/Restaurant-BookingService/pkg/types"
)

// OrderLineRequest строка заказа из HTTP запроса
// Price принимается для совместимости с формой, но игнорируется сервером
type OrderLineRequest struct {
	MenuItemID     int64    `json:"menuItemId"`
	Quantity       int      `json:"quantity"`
	Price          float64  `json:"price,omitempty"`
	Customizations []string `json:"customizations,omitempty"`
}

// CreateOrderRequest HTTP request model
type CreateOrderRequest struct {
	Type            string             `json:"type"` // "delivery" | "pickup"
	CustomerName    string             `json:"customerName"`
	CustomerEmail   string             `json:"customerEmail"`
	CustomerPhone   string             `json:"customerPhone"`
	DeliveryAddress *string            `json:"deliveryAddress,omitempty"`
	PickupTime      *string            `json:"pickupTime,omitempty"` // "13:30"
	Lines           []OrderLineRequest `json:"lines"`
	Notes           *string            `json:"notes,omitempty"`
}

// OrderResponse HTTP response model
// Все суммы серверные: присланные клиентом цены в ответ не возвращаются
type OrderResponse struct {
	ID              int64              `json:"id"`
	OrderNumber     string             `json:"orderNumber"`
	Type            string             `json:"type"`
	Status          string             `json:"status"`
	CustomerName    string             `json:"customerName"`
	CustomerEmail   string             `json:"customerEmail"`
	CustomerPhone   string             `json:"customerPhone"`
	DeliveryAddress *string            `json:"deliveryAddress,omitempty"`
	PickupTime      *string            `json:"pickupTime,omitempty"`
	Lines           []domain.OrderLine `json:"lines"`
	Subtotal        float64            `json:"subtotal"`
	Tax             float64            `json:"tax"`
	Total           float64            `json:"total"`
	Notes           *string            `json:"notes,omitempty"`
	CreatedAt       string             `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateOrderRequest) ToUseCaseRequest(clientIP string) (*createOrder.Request, error) {
	var pickupTime *types.TimeString
	if r.PickupTime != nil {
		ts, err := types.NewTimeStringFromString(*r.PickupTime)
		if err != nil {
			return nil, err
		}
		pickupTime = &ts
	}

	lines := make([]createOrder.RequestLine, len(r.Lines))
	for i, line := range r.Lines {
		lines[i] = createOrder.RequestLine{
			MenuItemID:     line.MenuItemID,
			Quantity:       line.Quantity,
			Price:          line.Price,
			Customizations: line.Customizations,
		}
	}

	return &createOrder.Request{
		Type:            domain.OrderType(r.Type),
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		DeliveryAddress: r.DeliveryAddress,
		PickupTime:      pickupTime,
		Lines:           lines,
		Notes:           r.Notes,
		ClientIP:        clientIP,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createOrder.Response) *OrderResponse {
	var pickupTime *string
	if resp.PickupTime != nil {
		s := resp.PickupTime.String()
		pickupTime = &s
	}

	return &OrderResponse{
		ID:              resp.ID,
		OrderNumber:     resp.OrderNumber,
		Type:            resp.Type,
		Status:          resp.Status,
		CustomerName:    resp.CustomerName,
		CustomerEmail:   resp.CustomerEmail,
		CustomerPhone:   resp.CustomerPhone,
		DeliveryAddress: resp.DeliveryAddress,
		PickupTime:      pickupTime,
		Lines:           resp.Lines,
		Subtotal:        resp.Subtotal,
		Tax:             resp.Tax,
		Total:           resp.Total,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
