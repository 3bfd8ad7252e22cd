package get_available_slots

import (
	"time"

	"github.com/m04kA/Restaurant-BookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/Restaurant-BookingService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель слота с вычисленной доступностью
type SlotResponse struct {
	StartTime         string `json:"startTime"` // "18:30"
	DurationMinutes   int    `json:"durationMinutes"`
	Available         bool   `json:"available"`
	RemainingCapacity int    `json:"remainingCapacity"`
	TotalCapacity     int    `json:"totalCapacity"`
}

// AvailabilityResponse HTTP ответ со списком слотов на дату
type AvailabilityResponse struct {
	Date  string         `json:"date"` // "2026-09-01"
	Slots []SlotResponse `json:"slots"`
}

// ToUseCaseRequest конвертирует query параметры в модель use case
func ToUseCaseRequest(dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}
	return &getAvailableSlots.Request{Date: date}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailabilityResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = SlotResponse{
			StartTime:         s.StartTime.String(),
			DurationMinutes:   s.DurationMinutes,
			Available:         s.Available,
			RemainingCapacity: s.RemainingCapacity,
			TotalCapacity:     s.TotalCapacity,
		}
	}

	return &AvailabilityResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: slots,
	}
}
