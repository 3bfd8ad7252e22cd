package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/Restaurant-BookingService/internal/domain"
	"github.com/m04kA/Restaurant-BookingService/pkg/types"
)

func TestTablesRequired(t *testing.T) {
	assert.Equal(t, 1, TablesRequired(1, 4))
	assert.Equal(t, 1, TablesRequired(4, 4))
	assert.Equal(t, 2, TablesRequired(5, 4))
	assert.Equal(t, 5, TablesRequired(20, 4))
}

func TestTablesRequired_InvalidSeatsFallsBackToDefault(t *testing.T) {
	assert.Equal(t, TablesRequired(6, domain.DefaultSeatsPerTable), TablesRequired(6, 0))
	assert.Equal(t, TablesRequired(6, domain.DefaultSeatsPerTable), TablesRequired(6, -1))
}

func TestTablesUsedAt_SumsGuestsBeforeCeiling(t *testing.T) {
	slot := types.TimeString("18:00")
	reservations := []*domain.Reservation{
		{StartTime: slot, PartySize: 2, Status: domain.StatusConfirmed},
		{StartTime: slot, PartySize: 2, Status: domain.StatusPending},
	}

	// 2+2 гостя = 1 стол при 4 местах, а не два по одному на каждую бронь
	assert.Equal(t, 1, TablesUsedAt(slot, reservations, 4))
}

func TestTablesUsedAt_IgnoresInactiveAndOtherTimes(t *testing.T) {
	slot := types.TimeString("18:00")
	reservations := []*domain.Reservation{
		{StartTime: slot, PartySize: 4, Status: domain.StatusCancelled},
		{StartTime: slot, PartySize: 4, Status: domain.StatusCompleted},
		{StartTime: types.TimeString("18:30"), PartySize: 4, Status: domain.StatusConfirmed},
	}

	assert.Equal(t, 0, TablesUsedAt(slot, reservations, 4))
}

func TestAnnotateSlots_RemainingAndAvailability(t *testing.T) {
	slots := []domain.TimeSlot{
		{StartTime: types.TimeString("18:00"), DurationMinutes: 30},
		{StartTime: types.TimeString("18:30"), DurationMinutes: 30},
	}
	reservations := []*domain.Reservation{
		{StartTime: types.TimeString("18:00"), PartySize: 8, Status: domain.StatusConfirmed},
	}

	annotated := AnnotateSlots(slots, reservations, 3, 4)

	assert.True(t, annotated[0].Available)
	assert.Equal(t, 1, annotated[0].RemainingCapacity)
	assert.Equal(t, 3, annotated[0].TotalCapacity)

	assert.True(t, annotated[1].Available)
	assert.Equal(t, 3, annotated[1].RemainingCapacity)
}

func TestAnnotateSlots_FullSlotUnavailable(t *testing.T) {
	slots := []domain.TimeSlot{
		{StartTime: types.TimeString("18:00"), DurationMinutes: 30},
	}
	reservations := []*domain.Reservation{
		{StartTime: types.TimeString("18:00"), PartySize: 8, Status: domain.StatusConfirmed},
	}

	annotated := AnnotateSlots(slots, reservations, 2, 4)

	assert.False(t, annotated[0].Available)
	assert.Equal(t, 0, annotated[0].RemainingCapacity)
}

func TestAnnotateSlots_OverbookedClampedToZero(t *testing.T) {
	slots := []domain.TimeSlot{
		{StartTime: types.TimeString("18:00"), DurationMinutes: 30},
	}
	reservations := []*domain.Reservation{
		{StartTime: types.TimeString("18:00"), PartySize: 20, Status: domain.StatusConfirmed},
	}

	annotated := AnnotateSlots(slots, reservations, 2, 4)

	assert.False(t, annotated[0].Available)
	assert.Equal(t, 0, annotated[0].RemainingCapacity)
}
