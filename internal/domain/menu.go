package domain

import "time"

// MenuItem позиция меню ресторана
// Единственный авторитетный источник цен: все денежные расчеты идут от Price,
// присланные клиентом цены никогда не используются
type MenuItem struct {
	ID          int64
	Name        string
	Description *string
	Category    string
	Price       float64
	Available   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MenuCatalog снимок меню для ценообразования, ключ - ID позиции
type MenuCatalog map[int64]*MenuItem

// NewMenuCatalog строит каталог из списка позиций
func NewMenuCatalog(items []*MenuItem) MenuCatalog {
	catalog := make(MenuCatalog, len(items))
	for _, item := range items {
		catalog[item.ID] = item
	}
	return catalog
}
