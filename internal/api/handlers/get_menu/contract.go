package get_menu

import (
	"context"

	menuModels "github.com/m04kA/Restaurant-BookingService/internal/service/menu/models"
)

type MenuService interface {
	List(ctx context.Context, onlyAvailable bool) (*menuModels.MenuListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
