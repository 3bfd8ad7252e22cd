package menu

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Restaurant-BookingService/internal/domain"
	"github.com/m04kA/Restaurant-BookingService/pkg/psqlbuilder"
	"github.com/m04kA/Restaurant-BookingService/pkg/txmanager"
)

var menuColumns = []string{
	"id",
	"name",
	"description",
	"category",
	"price",
	"available",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с меню
// Меню для этого сервиса read-only: авторитетный источник цен,
// управление позициями живет в админке за пределами ядра
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает новый экземпляр репозитория меню
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает все позиции меню
// Опционально фильтрует по доступности
func (r *Repository) List(ctx context.Context, onlyAvailable bool) ([]*domain.MenuItem, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(menuColumns...).
		From("menu_items").
		OrderBy("category ASC, name ASC")

	if onlyAvailable {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"available": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]*domain.MenuItem, 0)
	for rows.Next() {
		var item domain.MenuItem
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Description,
			&item.Category,
			&item.Price,
			&item.Available,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan menu item: %v", ErrScanRow, err)
		}

		item.CreatedAt = createdAt.Time
		item.UpdatedAt = updatedAt.Time
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return items, nil
}

// GetByIDs возвращает снимок каталога по списку ID позиций
// Снимок используется ценовым движком: заказ считается по состоянию каталога
// на момент одного чтения, не по позиции за раз
func (r *Repository) GetByIDs(ctx context.Context, ids []int64) (domain.MenuCatalog, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(menuColumns...).
		From("menu_items").
		Where(squirrel.Eq{"id": ids}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]*domain.MenuItem, 0, len(ids))
	for rows.Next() {
		var item domain.MenuItem
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Description,
			&item.Category,
			&item.Price,
			&item.Available,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByIDs - scan menu item: %v", ErrScanRow, err)
		}

		item.CreatedAt = createdAt.Time
		item.UpdatedAt = updatedAt.Time
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - rows error: %v", ErrScanRow, err)
	}

	return domain.NewMenuCatalog(items), nil
}
