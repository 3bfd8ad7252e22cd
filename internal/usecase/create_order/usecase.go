package create_order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/Restaurant-BookingService/internal/domain"
	settingsRepo "github.com/m04kA/Restaurant-BookingService/internal/infra/storage/settings"
	"github.com/m04kA/Restaurant-BookingService/internal/pricing"
	"github.com/m04kA/Restaurant-BookingService/internal/schedule"
	"github.com/m04kA/Restaurant-BookingService/pkg/ratelimit"
)

const rateLimitAction = "create_order"

// UseCase use case создания заказа
// Деньги считает только ценовой движок: присланные клиентом цены отбрасываются
// до любого расчета, в БД и письмо попадают исключительно серверные суммы
type UseCase struct {
	orderRepo    OrderRepository
	menuRepo     MenuRepository
	settingsRepo SettingsRepository
	mailClient   MailSender
	rateLimiter  RateLimiter
	timeProvider TimeProvider
	logger       Logger

	taxRate         float64
	rateLimitMax    int
	rateLimitWindow time.Duration
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	orderRepo OrderRepository,
	menuRepo MenuRepository,
	settingsRepo SettingsRepository,
	mailClient MailSender,
	rateLimiter RateLimiter,
	taxRate float64,
	rateLimitMax int,
	rateLimitWindow time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		orderRepo:    orderRepo,
		menuRepo:     menuRepo,
		settingsRepo: settingsRepo,
		mailClient:   mailClient,
		rateLimiter:  rateLimiter,
		timeProvider: &RealTimeProvider{},
		logger:       logger,

		taxRate:         taxRate,
		rateLimitMax:    rateLimitMax,
		rateLimitWindow: rateLimitWindow,
	}
}

// Execute выполняет use case создания заказа
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateOrder: type=%s, lines=%d, ip=%s", req.Type, len(req.Lines), req.ClientIP)

	// 1. Rate limit по идентификатору клиента, loopback-обход логируется
	if ratelimit.IsLocal(req.ClientIP) {
		uc.logger.Info("CreateOrder: rate limit bypassed for local address %s", req.ClientIP)
	} else {
		result := uc.rateLimiter.Check(
			ratelimit.Identifier(req.ClientIP, rateLimitAction),
			uc.rateLimitMax,
			uc.rateLimitWindow,
		)
		if !result.Allowed {
			uc.logger.Warn("CreateOrder: rate limit exceeded for %s", req.ClientIP)
			return nil, ErrRateLimited
		}
	}

	// 2. Пополевая валидация, включая требования по типу заказа
	if err := validateFields(req); err != nil {
		uc.logger.Warn("CreateOrder: field validation failed: %v", err)
		return nil, err
	}

	// 3. Для самовывоза время должно попадать в рабочее окно сегодняшнего дня
	if req.Type == domain.OrderTypePickup {
		if err := uc.validatePickupTime(ctx, req); err != nil {
			return nil, err
		}
	}

	// 4. Один снимок каталога на весь заказ
	ids := make([]int64, 0, len(req.Lines))
	for _, line := range req.Lines {
		ids = append(ids, line.MenuItemID)
	}

	catalog, err := uc.menuRepo.GetByIDs(ctx, ids)
	if err != nil {
		uc.logger.Error("CreateOrder: failed to load menu catalog: %v", err)
		return nil, fmt.Errorf("%w: failed to load menu catalog: %v", ErrInternal, err)
	}

	// 5. Серверный расчет стоимости: клиентские цены в pricing не передаются
	submitted := make([]pricing.SubmittedLine, 0, len(req.Lines))
	for _, line := range req.Lines {
		submitted = append(submitted, pricing.SubmittedLine{
			MenuItemID:     line.MenuItemID,
			Quantity:       line.Quantity,
			Customizations: line.Customizations,
		})
	}

	priced, err := pricing.Price(submitted, catalog, uc.taxRate)
	if err != nil {
		uc.logger.Warn("CreateOrder: pricing rejected order: %v", err)
		return nil, uc.mapPricingError(err)
	}

	// 6. Сохраняем заказ с серверными суммами
	order, err := uc.orderRepo.Create(ctx, &domain.Order{
		OrderNumber:     newOrderNumber(uc.timeProvider.Now()),
		Type:            req.Type,
		Status:          domain.OrderStatusReceived,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		DeliveryAddress: req.DeliveryAddress,
		PickupTime:      req.PickupTime,
		Lines:           priced.Lines,
		Subtotal:        priced.Subtotal,
		Tax:             priced.Tax,
		Total:           priced.Total,
		Notes:           req.Notes,
	})
	if err != nil {
		uc.logger.Error("CreateOrder: failed to create order: %v", err)
		return nil, fmt.Errorf("%w: failed to create order: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateOrder: successfully created order number=%s, total=%.2f",
		order.OrderNumber, order.Total)

	// 7. Чек fire-and-forget: ошибка отправки логируется и не меняет результат
	go uc.sendReceipt(order)

	return &Response{
		ID:              order.ID,
		OrderNumber:     order.OrderNumber,
		Type:            string(order.Type),
		Status:          string(order.Status),
		CustomerName:    order.CustomerName,
		CustomerEmail:   order.CustomerEmail,
		CustomerPhone:   order.CustomerPhone,
		DeliveryAddress: order.DeliveryAddress,
		PickupTime:      order.PickupTime,
		Lines:           order.Lines,
		Subtotal:        order.Subtotal,
		Tax:             order.Tax,
		Total:           order.Total,
		Notes:           order.Notes,
		CreatedAt:       order.CreatedAt,
	}, nil
}

func (uc *UseCase) validatePickupTime(ctx context.Context, req *Request) error {
	settings, err := uc.settingsRepo.GetSettings(ctx)
	if err != nil {
		if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			uc.logger.Error("CreateOrder: failed to get settings: %v", err)
			return fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
		}
		settings = domain.DefaultReservationSettings()
	}

	weekly, err := uc.settingsRepo.GetWeeklySchedule(ctx)
	if err != nil {
		uc.logger.Error("CreateOrder: failed to get weekly schedule: %v", err)
		return fmt.Errorf("%w: failed to get weekly schedule: %v", ErrInternal, err)
	}

	today := uc.timeProvider.Now()

	window, open, err := schedule.ResolveDay(settings, weekly, today)
	if err != nil {
		uc.logger.Error("CreateOrder: schedule configuration error: %v", err)
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if !open {
		uc.logger.Warn("CreateOrder: restaurant is closed today, pickup rejected")
		return ErrRestaurantClosed
	}

	if err := validatePickupWindow(*req.PickupTime, window); err != nil {
		uc.logger.Warn("CreateOrder: %v", err)
		return err
	}
	return nil
}

// mapPricingError переводит ошибки ценового движка в ошибки usecase
func (uc *UseCase) mapPricingError(err error) error {
	switch {
	case errors.Is(err, pricing.ErrItemNotFound):
		return fmt.Errorf("%w: %v", ErrItemNotFound, err)
	case errors.Is(err, pricing.ErrItemUnavailable):
		return fmt.Errorf("%w: %v", ErrItemUnavailable, err)
	case errors.Is(err, pricing.ErrInvalidQuantity), errors.Is(err, pricing.ErrInvalidLineCount):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

// newOrderNumber генерирует публичный номер заказа вида ORD_20260901_A1B2C3D4
func newOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("ORD_%s_%s", now.Format("20060102"), suffix)
}

func (uc *UseCase) sendReceipt(o *domain.Order) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := uc.mailClient.SendOrderReceipt(ctx, o); err != nil {
		uc.logger.Error("CreateOrder: failed to send receipt email for order %s: %v", o.OrderNumber, err)
	}
}
