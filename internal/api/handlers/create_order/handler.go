package create_order

import (
	"errors"
	"net/http"

	"github.com/m04kA/Restaurant-BookingService/internal/api/handlers"
	createOrder "github.com/m04kA/Restaurant-BookingService/internal/usecase/create_order"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidPickupTime  = "некорректный формат времени самовывоза, ожидается HH:MM"
	msgRateLimited        = "слишком много запросов, попробуйте позже"
	msgValidationFailed   = "ошибка валидации данных"
	msgItemNotFound       = "позиция меню не найдена"
	msgItemUnavailable    = "позиция меню недоступна"
	msgPickupOutOfHours   = "время самовывоза вне рабочих часов"
	msgRestaurantClosed   = "ресторан закрыт в выбранную дату"
	msgInvalidInput       = "некорректные входные данные"
	msgInvalidConfig      = "некорректная конфигурация рабочих часов"
)

type Handler struct {
	useCase CreateOrderUseCase
	logger  Logger
}

func NewHandler(useCase CreateOrderUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/orders
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /orders - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	clientIP := handlers.ClientIP(r)

	useCaseReq, err := req.ToUseCaseRequest(clientIP)
	if err != nil {
		h.logger.Warn("POST /orders - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPickupTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var validationErr *createOrder.ValidationError

		switch {
		case errors.Is(err, createOrder.ErrRateLimited):
			h.logger.Warn("POST /orders - Rate limited: ip=%s", clientIP)
			handlers.RespondTooManyRequests(w, msgRateLimited)

		case errors.As(err, &validationErr):
			h.logger.Warn("POST /orders - Validation failed: %v", err)
			fields := make([]handlers.FieldError, len(validationErr.Fields))
			for i, f := range validationErr.Fields {
				fields[i] = handlers.FieldError{Field: f.Field, Message: f.Message}
			}
			handlers.RespondValidationError(w, msgValidationFailed, fields)

		case errors.Is(err, createOrder.ErrItemNotFound):
			h.logger.Warn("POST /orders - Menu item not found: %v", err)
			handlers.RespondBadRequest(w, msgItemNotFound)

		case errors.Is(err, createOrder.ErrItemUnavailable):
			h.logger.Warn("POST /orders - Menu item unavailable: %v", err)
			handlers.RespondBadRequest(w, msgItemUnavailable)

		case errors.Is(err, createOrder.ErrInvalidPickupTime):
			h.logger.Warn("POST /orders - Pickup time out of hours: %v", err)
			handlers.RespondBadRequest(w, msgPickupOutOfHours)

		case errors.Is(err, createOrder.ErrRestaurantClosed):
			h.logger.Warn("POST /orders - Restaurant closed")
			handlers.RespondBadRequest(w, msgRestaurantClosed)

		case errors.Is(err, createOrder.ErrInvalidInput):
			h.logger.Warn("POST /orders - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createOrder.ErrInvalidConfig):
			h.logger.Error("POST /orders - Invalid schedule configuration: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInvalidConfig)

		default:
			h.logger.Error("POST /orders - Failed to create order: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /orders - Order created successfully: order_number=%s, total=%.2f",
		result.OrderNumber, result.Total)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
