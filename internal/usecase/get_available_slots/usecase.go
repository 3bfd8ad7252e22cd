package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Restaurant-BookingService/internal/domain"
	settingsRepo "github.com/m04kA/Restaurant-BookingService/internal/infra/storage/settings"
	"github.com/m04kA/Restaurant-BookingService/internal/schedule"
)

// UseCase use case для получения доступных слотов бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	settingsRepo    SettingsRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	settingsRepo SettingsRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		settingsRepo:    settingsRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
// Результат вычисляется заново на каждый вызов: слоты нигде не кэшируются
// и не сохраняются
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		uc.logger.Warn("GetAvailableSlots: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Загружаем настройки; при отсутствии записи работаем на дефолтах
	settings, err := uc.settingsRepo.GetSettings(ctx)
	if err != nil {
		if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			uc.logger.Error("GetAvailableSlots: failed to get settings: %v", err)
			return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
		}
		settings = domain.DefaultReservationSettings()
		uc.logger.Info("GetAvailableSlots: settings row absent, using defaults")
	}

	// 4. Валидация даты: не в прошлом и внутри окна бронирования
	if err := validateDate(req.Date, now, settings.BookingWindowDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 5. Загружаем недельное расписание (nil - расписание не настроено)
	weekly, err := uc.settingsRepo.GetWeeklySchedule(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get weekly schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get weekly schedule: %v", ErrInternal, err)
	}

	// 6. Разрешаем окно работы на дату
	window, open, err := schedule.ResolveDay(settings, weekly, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: schedule configuration error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if !open {
		uc.logger.Info("GetAvailableSlots: restaurant is closed on %s", req.Date.Format(domain.DateFormat))
		return &Response{Date: req.Date, Slots: []Slot{}}, nil
	}

	// 7. Генерируем кандидатов-слотов с учетом лид-тайма
	candidates := schedule.GenerateDaySlots(
		window,
		settings.SlotDurationMinutes,
		req.Date,
		now,
		settings.MinAdvanceMinutes(),
	)

	// 8. Читаем активные бронирования на дату
	reservations, err := uc.reservationRepo.GetWithFilter(ctx, domain.ReservationsFilter{
		Date: &req.Date,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 9. Вычисляем доступность и остаток вместимости каждого слота
	annotated := schedule.AnnotateSlots(candidates, reservations, settings.MaxTables, settings.SeatsPerTable)

	slots := make([]Slot, len(annotated))
	for i, s := range annotated {
		slots[i] = Slot{
			StartTime:         s.StartTime,
			DurationMinutes:   s.DurationMinutes,
			Available:         s.Available,
			RemainingCapacity: s.RemainingCapacity,
			TotalCapacity:     s.TotalCapacity,
		}
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for date=%s",
		len(slots), req.Date.Format(domain.DateFormat))

	return &Response{Date: req.Date, Slots: slots}, nil
}
