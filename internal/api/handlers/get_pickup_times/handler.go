package get_pickup_times

import (
	"errors"
	"net/http"

	"github.com/m04kA/Restaurant-BookingService/internal/api/handlers"
	getPickupTimes "github.com/m04kA/Restaurant-BookingService/internal/usecase/get_pickup_times"
)

const (
	msgMissingDate   = "дата обязательна"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateInPast    = "дата в прошлом"
	msgInvalidConfig = "некорректная конфигурация рабочих часов"
)

type Handler struct {
	useCase GetPickupTimesUseCase
	logger  Logger
}

func NewHandler(useCase GetPickupTimesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/orders/pickup-times
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /orders/pickup-times - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(dateStr)
	if err != nil {
		h.logger.Warn("GET /orders/pickup-times - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getPickupTimes.ErrInvalidInput):
			h.logger.Warn("GET /orders/pickup-times - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getPickupTimes.ErrInvalidDate):
			h.logger.Warn("GET /orders/pickup-times - Date in past: date=%s", dateStr)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getPickupTimes.ErrInvalidConfig):
			h.logger.Error("GET /orders/pickup-times - Invalid schedule configuration: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInvalidConfig)

		default:
			h.logger.Error("GET /orders/pickup-times - Failed to get times: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /orders/pickup-times - Times retrieved successfully: date=%s, times_count=%d",
		dateStr, len(result.Times))
	handlers.RespondJSON(w, http.StatusOK, response)
}
