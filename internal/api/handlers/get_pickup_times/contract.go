package get_pickup_times

import (
	"context"

	getPickupTimes "github.com/m04kA/Restaurant-BookingService/internal/usecase/get_pickup_times"
)

type GetPickupTimesUseCase interface {
	Execute(ctx context.Context, req *getPickupTimes.Request) (*getPickupTimes.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
