package get_user_reservations

import (
	"context"

	reservationModels "github.com/m04kA/Restaurant-BookingService/internal/service/reservations/models"
)

type ReservationService interface {
	GetUserReservations(ctx context.Context, req *reservationModels.GetUserReservationsRequest) (*reservationModels.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
