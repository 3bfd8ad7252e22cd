package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Restaurant-BookingService/internal/domain"
	"github.com/m04kA/Restaurant-BookingService/pkg/psqlbuilder"
	"github.com/m04kA/Restaurant-BookingService/pkg/txmanager"
)

// Repository репозиторий для работы с заказами
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает новый экземпляр репозитория заказов
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет заказ с уже посчитанными серверными суммами
// Строки заказа хранятся как jsonb-снимок: цены зафиксированы на момент заказа
// и не меняются при последующем редактировании меню
func (r *Repository) Create(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	linesJSON, err := json.Marshal(o.Lines)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal order lines: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Insert("orders").
		Columns(
			"order_number",
			"order_type",
			"status",
			"customer_name",
			"customer_email",
			"customer_phone",
			"delivery_address",
			"pickup_time",
			"lines",
			"subtotal",
			"tax",
			"total",
			"notes",
		).
		Values(
			o.OrderNumber,
			o.Type,
			o.Status,
			o.CustomerName,
			o.CustomerEmail,
			o.CustomerPhone,
			o.DeliveryAddress,
			o.PickupTime,
			linesJSON,
			o.Subtotal,
			o.Tax,
			o.Total,
			o.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&o.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	o.CreatedAt = createdAt.Time
	o.UpdatedAt = updatedAt.Time

	return o, nil
}

// GetByNumber получает заказ по публичному номеру
func (r *Repository) GetByNumber(ctx context.Context, orderNumber string) (*domain.Order, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"order_number",
		"order_type",
		"status",
		"customer_name",
		"customer_email",
		"customer_phone",
		"delivery_address",
		"pickup_time",
		"lines",
		"subtotal",
		"tax",
		"total",
		"notes",
		"created_at",
		"updated_at",
	).
		From("orders").
		Where(squirrel.Eq{"order_number": orderNumber}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByNumber - build select query: %v", ErrBuildQuery, err)
	}

	var o domain.Order
	var linesJSON []byte
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&o.ID,
		&o.OrderNumber,
		&o.Type,
		&o.Status,
		&o.CustomerName,
		&o.CustomerEmail,
		&o.CustomerPhone,
		&o.DeliveryAddress,
		&o.PickupTime,
		&linesJSON,
		&o.Subtotal,
		&o.Tax,
		&o.Total,
		&o.Notes,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByNumber - scan order: %v", ErrScanRow, err)
	}

	if err := json.Unmarshal(linesJSON, &o.Lines); err != nil {
		return nil, fmt.Errorf("%w: GetByNumber - unmarshal order lines: %v", ErrScanRow, err)
	}

	o.CreatedAt = createdAt.Time
	o.UpdatedAt = updatedAt.Time

	return &o, nil
}
