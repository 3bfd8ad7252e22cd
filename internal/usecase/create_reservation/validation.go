package create_reservation

import (
	"fmt"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/Restaurant-BookingService/internal/schedule"
	"github.com/m04kA/Restaurant-BookingService/pkg/types"
)

var phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9 ()\-]{5,19}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Ошибка регистрации возможна только при пустом теге - фиксируется на старте
	if err := v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("create_reservation: failed to register phone validator: %v", err))
	}
	return v
}

// customerFields поля запроса, проверяемые пополевой валидацией
type customerFields struct {
	CustomerName  string  `validate:"required,min=2,max=100"`
	CustomerEmail string  `validate:"required,email,max=254"`
	CustomerPhone string  `validate:"required,phone"`
	PartySize     int     `validate:"required,gte=1,lte=20"`
	Notes         *string `validate:"omitempty,max=500"`
}

// validateFields выполняет пополевую валидацию данных клиента
// Возвращает *ValidationError с детализацией по каждому полю
func validateFields(req *Request) error {
	fields := customerFields{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		PartySize:     req.PartySize,
		Notes:         req.Notes,
	}

	err := validate.Struct(fields)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	ve := &ValidationError{}
	for _, fe := range validationErrs {
		ve.Fields = append(ve.Fields, FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	return ve
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "email":
		return "must be a valid email address"
	case "phone":
		return "must be a valid phone number"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed validation rule %q", fe.Tag())
	}
}

// requestedInstant собирает дату и время слота в один момент времени
func requestedInstant(date time.Time, startTime types.TimeString, loc *time.Location) (time.Time, error) {
	minutes, err := startTime.Minutes()
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), minutes/60, minutes%60, 0, 0, loc), nil
}

// validateSlotGrid проверяет, что время попадает в сетку слотов рабочего окна:
// начало не раньше открытия, конец не позже закрытия, смещение от открытия
// кратно длительности слота
func validateSlotGrid(startTime types.TimeString, window schedule.DayWindow, slotMinutes int) error {
	if startTime.IsBefore(window.Open) {
		return fmt.Errorf("%w: before opening time %s", ErrInvalidTimeSlot, window.Open)
	}

	slotEnd, err := startTime.AddMinutes(slotMinutes)
	if err != nil || slotEnd.IsAfter(window.Close) {
		return fmt.Errorf("%w: slot does not fit before closing time %s", ErrInvalidTimeSlot, window.Close)
	}

	startMinutes, err := startTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: invalid start time", ErrInvalidInput)
	}
	openMinutes, err := window.Open.Minutes()
	if err != nil {
		return fmt.Errorf("%w: invalid open time", ErrInvalidConfig)
	}

	if slotMinutes <= 0 || (startMinutes-openMinutes)%slotMinutes != 0 {
		return fmt.Errorf("%w: time %s is not aligned to the %d-minute slot grid", ErrInvalidTimeSlot, startTime, slotMinutes)
	}

	return nil
}

// validateBasics проверяет наличие обязательных параметров запроса
func validateBasics(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}
	return nil
}
