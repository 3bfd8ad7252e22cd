package get_order

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/Restaurant-BookingService/internal/api/handlers"
	"github.com/m04kA/Restaurant-BookingService/internal/service/orders"
)

const (
	msgInvalidOrderNumber = "некорректный номер заказа"
	msgNotFound           = "заказ не найден"
)

type Handler struct {
	service OrderService
	logger  Logger
}

func NewHandler(service OrderService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/orders/{orderNumber}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	orderNumber := vars["orderNumber"]

	if orderNumber == "" {
		h.logger.Warn("GET /orders/{number} - Empty order number")
		handlers.RespondBadRequest(w, msgInvalidOrderNumber)
		return
	}

	order, err := h.service.GetByNumber(r.Context(), orderNumber)
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrOrderNotFound):
			h.logger.Warn("GET /orders/{number} - Order not found: number=%s", orderNumber)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /orders/{number} - Failed to get order: number=%s, error=%v", orderNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /orders/{number} - Order retrieved successfully: number=%s", orderNumber)
	handlers.RespondJSON(w, http.StatusOK, order)
}
