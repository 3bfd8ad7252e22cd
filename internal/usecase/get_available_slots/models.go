package get_available_slots

import (
	"time"

	"github.com/m04kA/Restaurant-BookingService/pkg/types"
)

// Request модель запроса доступных слотов
type Request struct {
	Date time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Slot модель слота с вычисленной доступностью
type Slot struct {
	StartTime         types.TimeString
	DurationMinutes   int
	Available         bool
	RemainingCapacity int
	TotalCapacity     int
}

// Response модель ответа со списком слотов
type Response struct {
	Date  time.Time
	Slots []Slot
}
