package create_order

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/Restaurant-BookingService/internal/domain"
	"github.com/m04kA/Restaurant-BookingService/internal/schedule"
	"github.com/m04kA/Restaurant-BookingService/pkg/types"
)

var phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9 ()\-]{5,19}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("create_order: failed to register phone validator: %v", err))
	}
	return v
}

// customerFields поля запроса, проверяемые пополевой валидацией
type customerFields struct {
	CustomerName    string  `validate:"required,min=2,max=100"`
	CustomerEmail   string  `validate:"required,email,max=254"`
	CustomerPhone   string  `validate:"required,phone"`
	DeliveryAddress *string `validate:"omitempty,min=5,max=300"`
	Notes           *string `validate:"omitempty,max=500"`
}

// validateFields выполняет пополевую валидацию данных клиента
// Возвращает *ValidationError с детализацией по каждому полю
func validateFields(req *Request) error {
	fields := customerFields{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		DeliveryAddress: req.DeliveryAddress,
		Notes:           req.Notes,
	}

	ve := &ValidationError{}

	err := validate.Struct(fields)
	if err != nil {
		validationErrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}
		for _, fe := range validationErrs {
			ve.Fields = append(ve.Fields, FieldError{
				Field:   fe.Field(),
				Message: fieldMessage(fe),
			})
		}
	}

	// Перекрестные требования по типу заказа не выражаются тегами
	switch req.Type {
	case domain.OrderTypeDelivery:
		if req.DeliveryAddress == nil || *req.DeliveryAddress == "" {
			ve.Fields = append(ve.Fields, FieldError{
				Field:   "DeliveryAddress",
				Message: "field is required for delivery orders",
			})
		}
	case domain.OrderTypePickup:
		if req.PickupTime == nil || req.PickupTime.IsZero() {
			ve.Fields = append(ve.Fields, FieldError{
				Field:   "PickupTime",
				Message: "field is required for pickup orders",
			})
		} else if err := req.PickupTime.Validate(); err != nil {
			ve.Fields = append(ve.Fields, FieldError{
				Field:   "PickupTime",
				Message: "must be a valid HH:MM time",
			})
		}
	default:
		ve.Fields = append(ve.Fields, FieldError{
			Field:   "Type",
			Message: "must be either delivery or pickup",
		})
	}

	if len(ve.Fields) > 0 {
		return ve
	}
	return nil
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
	default:
		return fmt.Sprintf("failed validation rule %q", fe.Tag())
	}
}

// validatePickupWindow проверяет, что время самовывоза попадает в рабочее окно
// Конец слота за временем закрытия не проверяется: самовывоз - это момент, а не интервал,
// достаточно чтобы ресторан был открыт в эту минуту
func validatePickupWindow(t types.TimeString, window schedule.DayWindow) error {
	if t.IsBefore(window.Open) || t.IsAfter(window.Close) {
		return fmt.Errorf("%w: %s is outside operating hours %s-%s",
			ErrInvalidPickupTime, t, window.Open, window.Close)
	}
	return nil
}
