package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/Restaurant-BookingService/internal/api/handlers"
	createReservation "github.com/m04kA/Restaurant-BookingService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgRateLimited        = "слишком много запросов, попробуйте позже"
	msgNotInFuture        = "время бронирования должно быть в будущем"
	msgTooLateToBook      = "слишком поздно для бронирования этого слота"
	msgWindowExceeded     = "дата бронирования за пределами окна бронирования"
	msgValidationFailed   = "ошибка валидации данных"
	msgRestaurantClosed   = "ресторан закрыт в выбранную дату"
	msgInvalidTimeSlot    = "некорректный временной слот"
	msgSlotNotAvailable   = "выбранный временной слот недоступен"
	msgInvalidInput       = "некорректные входные данные"
	msgInvalidConfig      = "некорректная конфигурация рабочих часов"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	clientIP := handlers.ClientIP(r)

	useCaseReq, err := req.ToUseCaseRequest(clientIP)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var validationErr *createReservation.ValidationError

		switch {
		case errors.Is(err, createReservation.ErrRateLimited):
			h.logger.Warn("POST /reservations - Rate limited: ip=%s", clientIP)
			handlers.RespondTooManyRequests(w, msgRateLimited)

		case errors.As(err, &validationErr):
			h.logger.Warn("POST /reservations - Validation failed: %v", err)
			fields := make([]handlers.FieldError, len(validationErr.Fields))
			for i, f := range validationErr.Fields {
				fields[i] = handlers.FieldError{Field: f.Field, Message: f.Message}
			}
			handlers.RespondValidationError(w, msgValidationFailed, fields)

		case errors.Is(err, createReservation.ErrNotInFuture):
			h.logger.Warn("POST /reservations - Time not in future: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgNotInFuture)

		case errors.Is(err, createReservation.ErrTooLateToBook):
			h.logger.Warn("POST /reservations - Too late to book: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createReservation.ErrWindowExceeded):
			h.logger.Warn("POST /reservations - Booking window exceeded: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgWindowExceeded)

		case errors.Is(err, createReservation.ErrRestaurantClosed):
			h.logger.Warn("POST /reservations - Restaurant closed: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgRestaurantClosed)

		case errors.Is(err, createReservation.ErrInvalidTimeSlot):
			h.logger.Warn("POST /reservations - Invalid time slot: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createReservation.ErrSlotNotAvailable):
			h.logger.Warn("POST /reservations - Slot not available: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createReservation.ErrInvalidConfig):
			h.logger.Error("POST /reservations - Invalid schedule configuration: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInvalidConfig)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: date=%s, time=%s, error=%v",
				req.Date, req.StartTime, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, code=%s",
		result.ID, result.ConfirmationCode)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
