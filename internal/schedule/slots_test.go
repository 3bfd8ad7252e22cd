package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Restaurant-BookingService/internal/domain"
	"github.com/m04kA/Restaurant-BookingService/pkg/types"
)

func defaultWindow(t *testing.T) DayWindow {
	t.Helper()

	open, err := types.NewTimeStringFromString("11:00")
	require.NoError(t, err)
	closeTime, err := types.NewTimeStringFromString("21:00")
	require.NoError(t, err)

	return DayWindow{Open: open, Close: closeTime}
}

func TestGenerateDaySlots_FutureDateFullDay(t *testing.T) {
	window := defaultWindow(t)
	now := time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	slots := GenerateDaySlots(window, 30, date, now, 120)

	// 11:00 - 21:00 с шагом 30 минут: последний слот 20:30-21:00
	require.Len(t, slots, 20)
	assert.Equal(t, "11:00", slots[0].StartTime.String())
	assert.Equal(t, "20:30", slots[len(slots)-1].StartTime.String())
	for _, slot := range slots {
		assert.Equal(t, 30, slot.DurationMinutes)
		assert.Equal(t, date, slot.Date)
	}
}

func TestGenerateDaySlots_LastSlotMustFitBeforeClose(t *testing.T) {
	window := defaultWindow(t)
	now := time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	// 45-минутные слоты: 20:15-21:00 помещается, 21:00-21:45 - нет
	slots := GenerateDaySlots(window, 45, date, now, 120)

	require.NotEmpty(t, slots)
	assert.Equal(t, "20:15", slots[len(slots)-1].StartTime.String())
}

func TestGenerateDaySlots_TodayLeadTimeRoundedUp(t *testing.T) {
	window := defaultWindow(t)
	// now=10:07, lead=20 -> 10:27, округление вверх к шагу 15 -> 10:30
	now := time.Date(2026, 9, 7, 10, 7, 0, 0, time.UTC)
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	slots := GenerateDaySlots(window, 15, date, now, 20)

	require.NotEmpty(t, slots)
	assert.Equal(t, "11:00", slots[0].StartTime.String())

	// Позже днем порог уже внутри окна работы
	now = time.Date(2026, 9, 7, 14, 7, 0, 0, time.UTC)
	slots = GenerateDaySlots(window, 15, date, now, 20)

	require.NotEmpty(t, slots)
	assert.Equal(t, "14:30", slots[0].StartTime.String())
}

func TestGenerateDaySlots_PastDateEmpty(t *testing.T) {
	window := defaultWindow(t)
	now := time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)

	slots := GenerateDaySlots(window, 30, date, now, 120)

	assert.Empty(t, slots)
}

func TestGenerateDaySlots_TodayAfterClose(t *testing.T) {
	window := defaultWindow(t)
	now := time.Date(2026, 9, 7, 22, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	slots := GenerateDaySlots(window, 30, date, now, 120)

	assert.Empty(t, slots)
}

func TestGenerateDaySlots_ZeroDurationDoesNotHang(t *testing.T) {
	window := defaultWindow(t)
	now := time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	assert.Empty(t, GenerateDaySlots(window, 0, date, now, 120))
	assert.Empty(t, GenerateDaySlots(window, -15, date, now, 120))
}

func TestGenerateDaySlots_Deterministic(t *testing.T) {
	window := defaultWindow(t)
	now := time.Date(2026, 9, 7, 10, 7, 0, 0, time.UTC)
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	first := GenerateDaySlots(window, 30, date, now, 120)
	second := GenerateDaySlots(window, 30, date, now, 120)

	assert.Equal(t, first, second)
}

func TestGenerateHorizon_SkipsClosedDays(t *testing.T) {
	settings := domain.DefaultReservationSettings()
	settings.ClosedWeekdays = []time.Weekday{time.Tuesday}
	// Понедельник 2026-09-07, 09:00 - до открытия, сегодня полный день
	now := time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC)

	slots, err := GenerateHorizon(settings, nil, now, 3, settings.MinAdvanceMinutes())

	require.NoError(t, err)
	// Понедельник + среда по 20 слотов, вторник закрыт
	require.Len(t, slots, 40)
	for _, slot := range slots {
		assert.NotEqual(t, time.Tuesday, slot.Date.Weekday())
	}
}

func TestGenerateHorizon_InvalidScheduleRejectsRequest(t *testing.T) {
	settings := domain.DefaultReservationSettings()
	settings.StartTime = "21:00"
	settings.EndTime = "11:00"
	now := time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC)

	_, err := GenerateHorizon(settings, nil, now, 3, settings.MinAdvanceMinutes())

	require.ErrorIs(t, err, ErrInvalidSchedule)
}
