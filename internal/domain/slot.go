package domain

import (
	"time"

	"github.com/m04kA/Restaurant-BookingService/pkg/types"
)

// TimeSlot represents a time slot offerable for a reservation
// Слоты вычисляются на каждый запрос заново и никогда не сохраняются
type TimeSlot struct {
	Date              time.Time
	StartTime         types.TimeString
	DurationMinutes   int
	Available         bool
	RemainingCapacity int // Свободные столы; наружу никогда не отдается отрицательным
	TotalCapacity     int
}

// IsFull returns true if the slot has no remaining capacity
func (s *TimeSlot) IsFull() bool {
	return s.RemainingCapacity <= 0
}

// IsPartiallyBooked returns true if the slot has some but not all capacity taken
func (s *TimeSlot) IsPartiallyBooked() bool {
	return s.RemainingCapacity > 0 && s.RemainingCapacity < s.TotalCapacity
}

// OccupancyRate returns the occupancy rate as a percentage (0-100)
func (s *TimeSlot) OccupancyRate() float64 {
	if s.TotalCapacity == 0 {
		return 0
	}
	occupied := s.TotalCapacity - s.RemainingCapacity
	return float64(occupied) / float64(s.TotalCapacity) * 100
}
