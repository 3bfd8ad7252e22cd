package schedule

import (
	"github.com/m04kA/Restaurant-BookingService/internal/domain"
	"github.com/m04kA/Restaurant-BookingService/pkg/types"
)

// TablesRequired переводит количество гостей в столы: ceil(partySize / seatsPerTable)
// Грубая оценка вместимости, а не рассадка по конкретным столам - это
// осознанное ограничение модели (capacity gating), а не недоработка
func TablesRequired(partySize, seatsPerTable int) int {
	if seatsPerTable <= 0 {
		seatsPerTable = domain.DefaultSeatsPerTable
	}
	return (partySize + seatsPerTable - 1) / seatsPerTable
}

// TablesUsedAt подсчитывает занятые столы на указанное время слота
// Учитываются только активные бронирования (pending, confirmed) ровно
// на это время; отмененные и завершенные вместимость не занимают
func TablesUsedAt(slotStart types.TimeString, reservations []*domain.Reservation, seatsPerTable int) int {
	totalGuests := 0
	for _, res := range reservations {
		if !res.IsActive() {
			continue
		}
		if res.StartTime != slotStart {
			continue
		}
		totalGuests += res.PartySize
	}

	if totalGuests == 0 {
		return 0
	}
	return TablesRequired(totalGuests, seatsPerTable)
}

// AnnotateSlots выставляет доступность и остаток вместимости для кандидатов-слотов
// remaining = maxTables - занятые столы; слот доступен при remaining > 0.
// Наружу остаток не отдается отрицательным (обрезается в ноль)
func AnnotateSlots(
	slots []domain.TimeSlot,
	reservations []*domain.Reservation,
	maxTables int,
	seatsPerTable int,
) []domain.TimeSlot {
	result := make([]domain.TimeSlot, len(slots))

	for i, slot := range slots {
		used := TablesUsedAt(slot.StartTime, reservations, seatsPerTable)

		remaining := maxTables - used
		slot.Available = remaining > 0
		if remaining < 0 {
			remaining = 0
		}
		slot.RemainingCapacity = remaining
		slot.TotalCapacity = maxTables

		result[i] = slot
	}

	return result
}
