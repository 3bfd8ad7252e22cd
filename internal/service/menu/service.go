package menu

import (
	"context"
	"fmt"

	"github.com/m04kA/Restaurant-BookingService/internal/service/menu/models"
)

// Service сервис для чтения меню
type Service struct {
	menuRepo MenuRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса меню
func NewService(menuRepo MenuRepository, logger Logger) *Service {
	return &Service{
		menuRepo: menuRepo,
		logger:   logger,
	}
}

// List возвращает список позиций меню
// onlyAvailable скрывает недоступные позиции из публичной выдачи
func (s *Service) List(ctx context.Context, onlyAvailable bool) (*models.MenuListResponse, error) {
	s.logger.Info("List: fetching menu, onlyAvailable=%t", onlyAvailable)

	items, err := s.menuRepo.List(ctx, onlyAvailable)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d menu items", len(items))
	return models.FromDomainMenuList(items), nil
}
