package settings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/Restaurant-BookingService/internal/domain"
	settingsRepo "github.com/m04kA/Restaurant-BookingService/internal/infra/storage/settings"
	"github.com/m04kA/Restaurant-BookingService/internal/service/settings/models"
	"github.com/m04kA/Restaurant-BookingService/pkg/types"
)

// Service сервис настроек бронирования (администратор)
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Get возвращает текущие настройки бронирования
// При отсутствии записи возвращает дефолтные значения - сервис обязан
// работать без какой-либо настройки администратором
func (s *Service) Get(ctx context.Context) (*models.SettingsResponse, error) {
	s.logger.Info("Get: fetching reservation settings")

	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Info("Get: settings row absent, returning defaults")
			return models.FromDomainSettings(domain.DefaultReservationSettings()), nil
		}
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSettings(settings), nil
}

// Update сохраняет настройки бронирования
// Значения проверяются до записи: некорректная конфигурация отклоняется целиком
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: updating reservation settings")

	if err := validateSettings(req); err != nil {
		s.logger.Warn("Update: settings validation failed: %v", err)
		return nil, err
	}

	updated, err := s.settingsRepo.UpsertSettings(ctx, req.ToDomainSettings())
	if err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated reservation settings")
	return models.FromDomainSettings(updated), nil
}

func validateSettings(req *models.UpdateSettingsRequest) error {
	open := types.TimeString(req.StartTime)
	if err := open.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidSettings, err)
	}

	closeTime := types.TimeString(req.EndTime)
	if err := closeTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidSettings, err)
	}

	if !open.IsBefore(closeTime) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidSettings)
	}

	if req.SlotDurationMinutes <= 0 || req.SlotDurationMinutes > 24*60 {
		return fmt.Errorf("%w: slotDurationMinutes must be between 1 and 1440", ErrInvalidSettings)
	}

	if req.MaxTables <= 0 {
		return fmt.Errorf("%w: maxTables must be positive", ErrInvalidSettings)
	}

	if req.SeatsPerTable <= 0 {
		return fmt.Errorf("%w: seatsPerTable must be positive", ErrInvalidSettings)
	}

	if req.MinAdvanceHours < 0 {
		return fmt.Errorf("%w: minAdvanceHours must not be negative", ErrInvalidSettings)
	}

	if req.BookingWindowDays <= 0 {
		return fmt.Errorf("%w: bookingWindowDays must be positive", ErrInvalidSettings)
	}

	for _, wd := range req.ClosedWeekdays {
		if wd < int(time.Sunday) || wd > int(time.Saturday) {
			return fmt.Errorf("%w: closedWeekdays values must be between 0 and 6", ErrInvalidSettings)
		}
	}

	return nil
}
