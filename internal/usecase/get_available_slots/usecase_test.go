package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Restaurant-BookingService/internal/domain"
	settingsRepo "github.com/m04kA/Restaurant-BookingService/internal/infra/storage/settings"
	"github.com/m04kA/Restaurant-BookingService/pkg/types"
)

type mockReservationRepo struct {
	reservations []*domain.Reservation
	err          error
}

func (m *mockReservationRepo) GetWithFilter(_ context.Context, _ domain.ReservationsFilter) ([]*domain.Reservation, error) {
	return m.reservations, m.err
}

type mockSettingsRepo struct {
	settings    *domain.ReservationSettings
	settingsErr error
	weekly      *domain.WeeklySchedule
	weeklyErr   error
}

func (m *mockSettingsRepo) GetSettings(_ context.Context) (*domain.ReservationSettings, error) {
	return m.settings, m.settingsErr
}

func (m *mockSettingsRepo) GetWeeklySchedule(_ context.Context) (*domain.WeeklySchedule, error) {
	return m.weekly, m.weeklyErr
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(reservations *mockReservationRepo, settings *mockSettingsRepo, now time.Time) *UseCase {
	return &UseCase{
		reservationRepo: reservations,
		settingsRepo:    settings,
		timeProvider:    &fixedTimeProvider{now: now},
		logger:          nopLogger{},
	}
}

// Понедельник, 12:00
var testNow = time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC)

func TestExecute_DefaultsWhenSettingsAbsent(t *testing.T) {
	uc := newTestUseCase(
		&mockReservationRepo{},
		&mockSettingsRepo{settingsErr: settingsRepo.ErrSettingsNotFound},
		testNow,
	)
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})

	require.NoError(t, err)
	// Дефолты: 11:00-21:00, 30-минутные слоты, 15 столов
	require.Len(t, resp.Slots, 20)
	for _, slot := range resp.Slots {
		assert.True(t, slot.Available)
		assert.Equal(t, 15, slot.RemainingCapacity)
		assert.Equal(t, 15, slot.TotalCapacity)
	}
}

func TestExecute_CapacityAnnotation(t *testing.T) {
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	settings := domain.DefaultReservationSettings()
	settings.MaxTables = 2

	uc := newTestUseCase(
		&mockReservationRepo{reservations: []*domain.Reservation{
			{StartTime: types.TimeString("18:00"), PartySize: 4, Status: domain.StatusConfirmed},
			{StartTime: types.TimeString("18:30"), PartySize: 8, Status: domain.StatusConfirmed},
			{StartTime: types.TimeString("19:00"), PartySize: 4, Status: domain.StatusCancelled},
		}},
		&mockSettingsRepo{settings: settings},
		testNow,
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})

	require.NoError(t, err)

	byStart := make(map[types.TimeString]Slot)
	for _, slot := range resp.Slots {
		byStart[slot.StartTime] = slot
	}

	assert.True(t, byStart["18:00"].Available)
	assert.Equal(t, 1, byStart["18:00"].RemainingCapacity)

	assert.False(t, byStart["18:30"].Available)
	assert.Equal(t, 0, byStart["18:30"].RemainingCapacity)

	// Отмененная бронь вместимость не занимает
	assert.True(t, byStart["19:00"].Available)
	assert.Equal(t, 2, byStart["19:00"].RemainingCapacity)
}

func TestExecute_ClosedDayReturnsEmptySlots(t *testing.T) {
	settings := domain.DefaultReservationSettings()
	settings.ClosedWeekdays = []time.Weekday{time.Thursday}

	uc := newTestUseCase(
		&mockReservationRepo{},
		&mockSettingsRepo{settings: settings},
		testNow,
	)
	// 2026-09-10 - четверг
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_DateInPast(t *testing.T) {
	uc := newTestUseCase(
		&mockReservationRepo{},
		&mockSettingsRepo{settings: domain.DefaultReservationSettings()},
		testNow,
	)
	date := time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), &Request{Date: date})

	require.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_DateOutsideBookingWindow(t *testing.T) {
	uc := newTestUseCase(
		&mockReservationRepo{},
		&mockSettingsRepo{settings: domain.DefaultReservationSettings()},
		testNow,
	)

	// Ровно на границе окна - допустимо
	boundary := time.Date(2026, 10, 7, 0, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), &Request{Date: boundary})
	require.NoError(t, err)

	// На день дальше - отклоняется
	beyond := boundary.AddDate(0, 0, 1)
	_, err = uc.Execute(context.Background(), &Request{Date: beyond})
	require.ErrorIs(t, err, ErrDateTooFarInFuture)
}

func TestExecute_ZeroDateRejected(t *testing.T) {
	uc := newTestUseCase(
		&mockReservationRepo{},
		&mockSettingsRepo{settings: domain.DefaultReservationSettings()},
		testNow,
	)

	_, err := uc.Execute(context.Background(), &Request{})

	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_InvalidScheduleConfig(t *testing.T) {
	settings := domain.DefaultReservationSettings()
	settings.StartTime = "21:00"
	settings.EndTime = "11:00"

	uc := newTestUseCase(
		&mockReservationRepo{},
		&mockSettingsRepo{settings: settings},
		testNow,
	)
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), &Request{Date: date})

	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestExecute_ReservationRepoError(t *testing.T) {
	uc := newTestUseCase(
		&mockReservationRepo{err: errors.New("db down")},
		&mockSettingsRepo{settings: domain.DefaultReservationSettings()},
		testNow,
	)
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), &Request{Date: date})

	require.ErrorIs(t, err, ErrInternal)
}
