package get_pickup_times

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Restaurant-BookingService/internal/domain"
	settingsRepo "github.com/m04kA/Restaurant-BookingService/internal/infra/storage/settings"
	"github.com/m04kA/Restaurant-BookingService/pkg/types"
)

type mockSettingsRepo struct {
	settings    *domain.ReservationSettings
	settingsErr error
	weekly      *domain.WeeklySchedule
}

func (m *mockSettingsRepo) GetSettings(_ context.Context) (*domain.ReservationSettings, error) {
	return m.settings, m.settingsErr
}

func (m *mockSettingsRepo) GetWeeklySchedule(_ context.Context) (*domain.WeeklySchedule, error) {
	return m.weekly, nil
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

// Понедельник, 12:00
var testNow = time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC)

func newTestUseCase(repo *mockSettingsRepo) *UseCase {
	return &UseCase{
		settingsRepo: repo,
		timeProvider: &fixedTimeProvider{now: testNow},
		logger:       nopLogger{},
	}
}

func TestExecute_FutureDateFullGrid(t *testing.T) {
	uc := newTestUseCase(&mockSettingsRepo{settings: domain.DefaultReservationSettings()})
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})

	require.NoError(t, err)
	require.Len(t, resp.Times, 20)
	assert.Equal(t, types.TimeString("11:00"), resp.Times[0])
	assert.Equal(t, types.TimeString("20:30"), resp.Times[len(resp.Times)-1])
}

func TestExecute_TodayRespectsLeadTime(t *testing.T) {
	uc := newTestUseCase(&mockSettingsRepo{settings: domain.DefaultReservationSettings()})
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})

	require.NoError(t, err)
	require.NotEmpty(t, resp.Times)
	// now=12:00 + 2 часа лид-тайма
	assert.Equal(t, types.TimeString("14:00"), resp.Times[0])
}

func TestExecute_ClosedDayReturnsEmptyTimes(t *testing.T) {
	settings := domain.DefaultReservationSettings()
	settings.ClosedWeekdays = []time.Weekday{time.Thursday}
	uc := newTestUseCase(&mockSettingsRepo{settings: settings})

	// 2026-09-10 - четверг
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})

	require.NoError(t, err)
	assert.Empty(t, resp.Times)
}

func TestExecute_PastDateRejected(t *testing.T) {
	uc := newTestUseCase(&mockSettingsRepo{settings: domain.DefaultReservationSettings()})
	date := time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), &Request{Date: date})

	require.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_ZeroDateRejected(t *testing.T) {
	uc := newTestUseCase(&mockSettingsRepo{settings: domain.DefaultReservationSettings()})

	_, err := uc.Execute(context.Background(), &Request{})

	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_DefaultsWhenSettingsAbsent(t *testing.T) {
	uc := newTestUseCase(&mockSettingsRepo{settingsErr: settingsRepo.ErrSettingsNotFound})
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})

	require.NoError(t, err)
	assert.Len(t, resp.Times, 20)
}

func TestExecute_InvalidScheduleConfig(t *testing.T) {
	settings := domain.DefaultReservationSettings()
	settings.StartTime = "21:00"
	settings.EndTime = "11:00"
	uc := newTestUseCase(&mockSettingsRepo{settings: settings})
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), &Request{Date: date})

	require.ErrorIs(t, err, ErrInvalidConfig)
}
