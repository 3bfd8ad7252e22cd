package settings

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/Restaurant-BookingService/internal/domain"
	"github.com/m04kA/Restaurant-BookingService/pkg/psqlbuilder"
	"github.com/m04kA/Restaurant-BookingService/pkg/txmanager"
)

// settingsRowID настройки ресторана - одна логическая запись
const settingsRowID = 1

// Repository репозиторий настроек бронирования и недельного расписания
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetSettings читает настройки бронирования
// Возвращает ErrSettingsNotFound, если записи нет - вызывающий код подставляет
// domain.DefaultReservationSettings()
func (r *Repository) GetSettings(ctx context.Context) (*domain.ReservationSettings, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"start_time",
		"end_time",
		"slot_duration_minutes",
		"max_tables",
		"seats_per_table",
		"closed_weekdays",
		"min_advance_hours",
		"booking_window_days",
		"auto_confirm",
		"created_at",
		"updated_at",
	).
		From("restaurant_settings").
		Where(squirrel.Eq{"id": settingsRowID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSettings - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.ReservationSettings
	var closedWeekdays pq.Int64Array
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.StartTime,
		&s.EndTime,
		&s.SlotDurationMinutes,
		&s.MaxTables,
		&s.SeatsPerTable,
		&closedWeekdays,
		&s.MinAdvanceHours,
		&s.BookingWindowDays,
		&s.AutoConfirm,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSettings - scan settings: %v", ErrScanRow, err)
	}

	s.ClosedWeekdays = make([]time.Weekday, 0, len(closedWeekdays))
	for _, wd := range closedWeekdays {
		s.ClosedWeekdays = append(s.ClosedWeekdays, time.Weekday(wd))
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// UpsertSettings сохраняет настройки бронирования (одна логическая запись)
func (r *Repository) UpsertSettings(ctx context.Context, s *domain.ReservationSettings) (*domain.ReservationSettings, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	closedWeekdays := make(pq.Int64Array, 0, len(s.ClosedWeekdays))
	for _, wd := range s.ClosedWeekdays {
		closedWeekdays = append(closedWeekdays, int64(wd))
	}

	query, args, err := psqlbuilder.Insert("restaurant_settings").
		Columns(
			"id",
			"start_time",
			"end_time",
			"slot_duration_minutes",
			"max_tables",
			"seats_per_table",
			"closed_weekdays",
			"min_advance_hours",
			"booking_window_days",
			"auto_confirm",
		).
		Values(
			settingsRowID,
			s.StartTime,
			s.EndTime,
			s.SlotDurationMinutes,
			s.MaxTables,
			s.SeatsPerTable,
			closedWeekdays,
			s.MinAdvanceHours,
			s.BookingWindowDays,
			s.AutoConfirm,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			slot_duration_minutes = EXCLUDED.slot_duration_minutes,
			max_tables = EXCLUDED.max_tables,
			seats_per_table = EXCLUDED.seats_per_table,
			closed_weekdays = EXCLUDED.closed_weekdays,
			min_advance_hours = EXCLUDED.min_advance_hours,
			booking_window_days = EXCLUDED.booking_window_days,
			auto_confirm = EXCLUDED.auto_confirm,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertSettings - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertSettings - execute upsert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// GetWeeklySchedule читает недельное расписание работы ресторана
// Возвращает nil без ошибки, если расписание не настроено - в этом случае
// календарь использует часы по умолчанию из настроек
func (r *Repository) GetWeeklySchedule(ctx context.Context) (*domain.WeeklySchedule, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"weekday",
		"is_open",
		"open_time",
		"close_time",
	).
		From("operating_hours").
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWeeklySchedule - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeeklySchedule - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var weekly domain.WeeklySchedule
	found := false

	for rows.Next() {
		var weekday int
		var day domain.DaySchedule

		if err := rows.Scan(&weekday, &day.IsOpen, &day.OpenTime, &day.CloseTime); err != nil {
			return nil, fmt.Errorf("%w: GetWeeklySchedule - scan day: %v", ErrScanRow, err)
		}

		found = true
		switch time.Weekday(weekday) {
		case time.Monday:
			weekly.Monday = day
		case time.Tuesday:
			weekly.Tuesday = day
		case time.Wednesday:
			weekly.Wednesday = day
		case time.Thursday:
			weekly.Thursday = day
		case time.Friday:
			weekly.Friday = day
		case time.Saturday:
			weekly.Saturday = day
		case time.Sunday:
			weekly.Sunday = day
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWeeklySchedule - rows error: %v", ErrScanRow, err)
	}

	if !found {
		return nil, nil
	}

	return &weekly, nil
}
