package update_settings

import (
	"context"

	settingsModels "github.com/m04kA/Restaurant-BookingService/internal/service/settings/models"
)

type SettingsService interface {
	Update(ctx context.Context, req *settingsModels.UpdateSettingsRequest) (*settingsModels.SettingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
