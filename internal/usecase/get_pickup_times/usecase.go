package get_pickup_times

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/Restaurant-BookingService/internal/domain"
	settingsRepo "github.com/m04kA/Restaurant-BookingService/internal/infra/storage/settings"
	"github.com/m04kA/Restaurant-BookingService/internal/schedule"
	"github.com/m04kA/Restaurant-BookingService/pkg/types"
)

// UseCase use case для получения доступных времен самовывоза
// Использует ту же сетку слотов, что и бронирования, но без проверки столов:
// ограничение самовывоза - только рабочие часы и лид-тайм
type UseCase struct {
	settingsRepo SettingsRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(settingsRepo SettingsRepository, logger Logger) *UseCase {
	return &UseCase{
		settingsRepo: settingsRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения времен самовывоза
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetPickupTimes: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		uc.logger.Warn("GetPickupTimes: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	requested := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, now.Location())
	if requested.Before(today) {
		uc.logger.Warn("GetPickupTimes: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: date is in the past", ErrInvalidDate)
	}

	// 2. Загружаем настройки; при отсутствии записи работаем на дефолтах
	settings, err := uc.settingsRepo.GetSettings(ctx)
	if err != nil {
		if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			uc.logger.Error("GetPickupTimes: failed to get settings: %v", err)
			return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
		}
		settings = domain.DefaultReservationSettings()
		uc.logger.Info("GetPickupTimes: settings row absent, using defaults")
	}

	// 3. Загружаем недельное расписание
	weekly, err := uc.settingsRepo.GetWeeklySchedule(ctx)
	if err != nil {
		uc.logger.Error("GetPickupTimes: failed to get weekly schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get weekly schedule: %v", ErrInternal, err)
	}

	// 4. Разрешаем окно работы на дату
	window, open, err := schedule.ResolveDay(settings, weekly, req.Date)
	if err != nil {
		uc.logger.Error("GetPickupTimes: schedule configuration error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if !open {
		uc.logger.Info("GetPickupTimes: restaurant is closed on %s", req.Date.Format(domain.DateFormat))
		return &Response{Date: req.Date, Times: []types.TimeString{}}, nil
	}

	// 5. Генерируем сетку времен с учетом лид-тайма, вместимость не аннотируем
	candidates := schedule.GenerateDaySlots(
		window,
		settings.SlotDurationMinutes,
		req.Date,
		now,
		settings.MinAdvanceMinutes(),
	)

	times := make([]types.TimeString, len(candidates))
	for i, s := range candidates {
		times[i] = s.StartTime
	}

	uc.logger.Info("GetPickupTimes: generated %d times for date=%s",
		len(times), req.Date.Format(domain.DateFormat))

	return &Response{Date: req.Date, Times: times}, nil
}
