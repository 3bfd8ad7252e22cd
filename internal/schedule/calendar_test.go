package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Restaurant-BookingService/internal/domain"
	"github.com/m04kA/Restaurant-BookingService/pkg/ptr"
)

// 2026-09-07 - понедельник
var monday = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
var sunday = time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)

func TestResolveDay_DefaultHours(t *testing.T) {
	settings := domain.DefaultReservationSettings()

	window, open, err := ResolveDay(settings, nil, monday)

	require.NoError(t, err)
	require.True(t, open)
	assert.Equal(t, "11:00", window.Open.String())
	assert.Equal(t, "21:00", window.Close.String())
}

func TestResolveDay_ClosedWeekday(t *testing.T) {
	settings := domain.DefaultReservationSettings()
	settings.ClosedWeekdays = []time.Weekday{time.Sunday}

	_, open, err := ResolveDay(settings, nil, sunday)

	require.NoError(t, err)
	assert.False(t, open)
}

func TestResolveDay_WeeklyScheduleOverridesDefaults(t *testing.T) {
	settings := domain.DefaultReservationSettings()
	weekly := &domain.WeeklySchedule{
		Monday: domain.DaySchedule{
			IsOpen:    true,
			OpenTime:  ptr.Ptr("09:00"),
			CloseTime: ptr.Ptr("17:00"),
		},
	}

	window, open, err := ResolveDay(settings, weekly, monday)

	require.NoError(t, err)
	require.True(t, open)
	assert.Equal(t, "09:00", window.Open.String())
	assert.Equal(t, "17:00", window.Close.String())
}

func TestResolveDay_WeeklyScheduleClosedDay(t *testing.T) {
	settings := domain.DefaultReservationSettings()
	weekly := &domain.WeeklySchedule{
		Monday: domain.DaySchedule{IsOpen: false},
	}

	_, open, err := ResolveDay(settings, weekly, monday)

	require.NoError(t, err)
	assert.False(t, open)
}

func TestResolveDay_OpenDayWithoutHours(t *testing.T) {
	settings := domain.DefaultReservationSettings()
	weekly := &domain.WeeklySchedule{
		Monday: domain.DaySchedule{IsOpen: true},
	}

	_, _, err := ResolveDay(settings, weekly, monday)

	require.ErrorIs(t, err, ErrInvalidSchedule)
}

func TestResolveDay_MalformedHours(t *testing.T) {
	settings := domain.DefaultReservationSettings()
	weekly := &domain.WeeklySchedule{
		Monday: domain.DaySchedule{
			IsOpen:    true,
			OpenTime:  ptr.Ptr("не время"),
			CloseTime: ptr.Ptr("17:00"),
		},
	}

	_, _, err := ResolveDay(settings, weekly, monday)

	require.ErrorIs(t, err, ErrInvalidSchedule)
}

func TestResolveDay_OpenNotBeforeClose(t *testing.T) {
	settings := domain.DefaultReservationSettings()
	settings.StartTime = "21:00"
	settings.EndTime = "11:00"

	_, _, err := ResolveDay(settings, nil, monday)

	require.ErrorIs(t, err, ErrInvalidSchedule)
}
