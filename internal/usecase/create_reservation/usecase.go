package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/Restaurant-BookingService/internal/domain"
	settingsRepo "github.com/m04kA/Restaurant-BookingService/internal/infra/storage/settings"
	"github.com/m04kA/Restaurant-BookingService/internal/schedule"
	"github.com/m04kA/Restaurant-BookingService/pkg/ratelimit"
)

const rateLimitAction = "create_reservation"

// UseCase use case создания бронирования (контроллер допуска)
// Порядок проверок фиксирован, первая ошибка завершает запрос:
// rate limit -> время строго в будущем -> минимальный лид-тайм ->
// окно бронирования -> пополевая валидация -> вместимость слота
type UseCase struct {
	reservationRepo ReservationRepository
	settingsRepo    SettingsRepository
	mailClient      MailSender
	rateLimiter     RateLimiter
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger

	rateLimitMax    int
	rateLimitWindow time.Duration
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	settingsRepo SettingsRepository,
	mailClient MailSender,
	rateLimiter RateLimiter,
	txManager TransactionManager,
	rateLimitMax int,
	rateLimitWindow time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		settingsRepo:    settingsRepo,
		mailClient:      mailClient,
		rateLimiter:     rateLimiter,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
		rateLimitMax:    rateLimitMax,
		rateLimitWindow: rateLimitWindow,
	}
}

// Execute выполняет use case создания бронирования
// Проверка вместимости и вставка выполняются в сериализуемой транзакции,
// чтобы два конкурентных запроса не заняли последний стол дважды
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: date=%s, time=%s, party=%d, ip=%s",
		req.Date.Format(domain.DateFormat), req.StartTime, req.PartySize, req.ClientIP)

	// 1. Rate limit по идентификатору клиента
	// Loopback-адреса не лимитируются - осознанное исключение для разработки,
	// каждый обход фиксируется в логе
	if ratelimit.IsLocal(req.ClientIP) {
		uc.logger.Info("CreateReservation: rate limit bypassed for local address %s", req.ClientIP)
	} else {
		result := uc.rateLimiter.Check(
			ratelimit.Identifier(req.ClientIP, rateLimitAction),
			uc.rateLimitMax,
			uc.rateLimitWindow,
		)
		if !result.Allowed {
			uc.logger.Warn("CreateReservation: rate limit exceeded for %s", req.ClientIP)
			return nil, ErrRateLimited
		}
	}

	// 2. Базовая проверка наличия даты и времени
	if err := validateBasics(req); err != nil {
		uc.logger.Warn("CreateReservation: invalid input: %v", err)
		return nil, err
	}

	// 3. Получаем текущее время и настройки
	now := uc.timeProvider.Now()

	settings, err := uc.settingsRepo.GetSettings(ctx)
	if err != nil {
		if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			uc.logger.Error("CreateReservation: failed to get settings: %v", err)
			return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
		}
		settings = domain.DefaultReservationSettings()
		uc.logger.Info("CreateReservation: settings row absent, using defaults")
	}

	requestedAt, err := requestedInstant(req.Date, req.StartTime, now.Location())
	if err != nil {
		uc.logger.Warn("CreateReservation: %v", err)
		return nil, err
	}

	// 4. Время строго в будущем
	if !requestedAt.After(now) {
		uc.logger.Warn("CreateReservation: requested time %s is not in the future", requestedAt)
		return nil, ErrNotInFuture
	}

	// 5. Минимальный лид-тайм
	if requestedAt.Sub(now) < time.Duration(settings.MinAdvanceHours)*time.Hour {
		uc.logger.Warn("CreateReservation: min advance of %d hours violated", settings.MinAdvanceHours)
		return nil, fmt.Errorf("%w: must book at least %d hours in advance", ErrTooLateToBook, settings.MinAdvanceHours)
	}

	// 6. Окно бронирования: ровно now + windowDays еще допустимо
	windowLimit := now.AddDate(0, 0, settings.BookingWindowDays)
	if requestedAt.After(windowLimit) {
		uc.logger.Warn("CreateReservation: booking window of %d days exceeded", settings.BookingWindowDays)
		return nil, fmt.Errorf("%w: can only book %d days in advance", ErrWindowExceeded, settings.BookingWindowDays)
	}

	// 7. Пополевая валидация данных клиента
	if err := validateFields(req); err != nil {
		uc.logger.Warn("CreateReservation: field validation failed: %v", err)
		return nil, err
	}

	// 8. Загружаем недельное расписание
	weekly, err := uc.settingsRepo.GetWeeklySchedule(ctx)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to get weekly schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get weekly schedule: %v", ErrInternal, err)
	}

	var result *domain.Reservation

	// 9. Проверка вместимости и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 9.1. Окно работы на дату
		window, open, err := schedule.ResolveDay(settings, weekly, req.Date)
		if err != nil {
			uc.logger.Error("CreateReservation: schedule configuration error: %v", err)
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		if !open {
			uc.logger.Warn("CreateReservation: restaurant is closed on %s", req.Date.Format(domain.DateFormat))
			return ErrRestaurantClosed
		}

		// 9.2. Время должно попадать в сетку слотов
		if err := validateSlotGrid(req.StartTime, window, settings.SlotDurationMinutes); err != nil {
			uc.logger.Warn("CreateReservation: slot grid validation failed: %v", err)
			return err
		}

		// 9.3. Читаем активные бронирования на дату (FOR UPDATE внутри транзакции)
		reservations, err := uc.reservationRepo.GetWithFilter(txCtx, domain.ReservationsFilter{
			Date: &req.Date,
		})
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 9.4. Проверяем, что гости поместятся в оставшиеся столы
		used := schedule.TablesUsedAt(req.StartTime, reservations, settings.SeatsPerTable)
		needed := schedule.TablesRequired(req.PartySize, settings.SeatsPerTable)

		if used+needed > settings.MaxTables {
			uc.logger.Warn("CreateReservation: slot %s full, used=%d, needed=%d, max=%d",
				req.StartTime, used, needed, settings.MaxTables)
			return ErrSlotNotAvailable
		}

		uc.logger.Info("CreateReservation: slot %s available, used=%d, needed=%d, max=%d",
			req.StartTime, used, needed, settings.MaxTables)

		// 9.5. Статус по настройке автоподтверждения
		status := domain.StatusPending
		if settings.AutoConfirm {
			status = domain.StatusConfirmed
		}

		// 9.6. Сохраняем бронирование
		created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			ConfirmationCode: uuid.NewString(),
			UserID:           req.UserID,
			Date:             req.Date,
			StartTime:        req.StartTime,
			DurationMinutes:  settings.SlotDurationMinutes,
			PartySize:        req.PartySize,
			Status:           status,
			CustomerName:     req.CustomerName,
			CustomerEmail:    req.CustomerEmail,
			CustomerPhone:    req.CustomerPhone,
			Notes:            req.Notes,
		})
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d, code=%s, status=%s",
		result.ID, result.ConfirmationCode, result.Status)

	// 10. Письмо-подтверждение fire-and-forget: ошибка отправки логируется,
	// но принятый результат бронирования уже не меняется
	go uc.sendConfirmation(result)

	return &Response{
		ID:               result.ID,
		ConfirmationCode: result.ConfirmationCode,
		Date:             result.Date,
		StartTime:        result.StartTime,
		DurationMinutes:  result.DurationMinutes,
		PartySize:        result.PartySize,
		Status:           string(result.Status),
		CustomerName:     result.CustomerName,
		CustomerEmail:    result.CustomerEmail,
		CustomerPhone:    result.CustomerPhone,
		Notes:            result.Notes,
		CreatedAt:        result.CreatedAt,
	}, nil
}

func (uc *UseCase) sendConfirmation(res *domain.Reservation) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := uc.mailClient.SendReservationConfirmation(ctx, res); err != nil {
		uc.logger.Error("CreateReservation: failed to send confirmation email for reservation id=%d: %v",
			res.ID, err)
	}
}
