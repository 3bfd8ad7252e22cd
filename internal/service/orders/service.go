package orders

import (
	"context"
	"errors"
	"fmt"

	orderRepo "github.com/m04kA/Restaurant-BookingService/internal/infra/storage/order"
	"github.com/m04kA/Restaurant-BookingService/internal/service/orders/models"
)

// Service сервис для чтения заказов
// Создание заказов живет в отдельном usecase с авторитетным ценообразованием,
// здесь - только чтение по публичному номеру
type Service struct {
	orderRepo OrderRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса заказов
func NewService(orderRepo OrderRepository, logger Logger) *Service {
	return &Service{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// GetByNumber получает заказ по публичному номеру
// Номер заказа не перебираем (случайный суффикс), поэтому выдача не требует
// аутентификации: знание номера подтверждает причастность к заказу
func (s *Service) GetByNumber(ctx context.Context, orderNumber string) (*models.OrderResponse, error) {
	s.logger.Info("GetByNumber: fetching order number=%s", orderNumber)

	order, err := s.orderRepo.GetByNumber(ctx, orderNumber)
	if err != nil {
		if errors.Is(err, orderRepo.ErrOrderNotFound) {
			s.logger.Warn("GetByNumber: order number=%s not found", orderNumber)
			return nil, ErrOrderNotFound
		}
		s.logger.Error("GetByNumber: repository error for order number=%s: %v", orderNumber, err)
		return nil, fmt.Errorf("%w: GetByNumber - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByNumber: successfully fetched order number=%s", orderNumber)
	return models.FromDomainOrder(order), nil
}
