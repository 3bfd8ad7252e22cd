package models

import (
	"github.com/m04kA/Restaurant-BookingService/internal/domain"
)

// MenuItemResponse ответ с данными позиции меню
// Price - авторитетная цена каталога, единственная, которую видит клиент
type MenuItemResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Available   bool    `json:"available"`
}

// MenuListResponse ответ со списком позиций меню
type MenuListResponse struct {
	Items []MenuItemResponse `json:"items"`
}

// FromDomainMenuItem конвертирует domain модель в DTO
func FromDomainMenuItem(item *domain.MenuItem) *MenuItemResponse {
	if item == nil {
		return nil
	}

	return &MenuItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Category:    item.Category,
		Price:       item.Price,
		Available:   item.Available,
	}
}

// FromDomainMenuList конвертирует список domain моделей в DTO
func FromDomainMenuList(items []*domain.MenuItem) *MenuListResponse {
	if items == nil {
		return &MenuListResponse{Items: []MenuItemResponse{}}
	}

	resp := &MenuListResponse{
		Items: make([]MenuItemResponse, len(items)),
	}

	for i, item := range items {
		if itemResp := FromDomainMenuItem(item); itemResp != nil {
			resp.Items[i] = *itemResp
		}
	}

	return resp
}
