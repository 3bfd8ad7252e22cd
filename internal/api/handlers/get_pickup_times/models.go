package get_pickup_times

import (
	"time"

	"github.com/m04kA/Restaurant-BookingService/internal/domain"
	getPickupTimes "github.com/m04kA/Restaurant-BookingService/internal/usecase/get_pickup_times"
)

// PickupTimesResponse HTTP ответ со списком времен самовывоза
type PickupTimesResponse struct {
	Date  string   `json:"date"`  // "2026-09-01"
	Times []string `json:"times"` // ["11:00", "11:30", ...]
}

// ToUseCaseRequest конвертирует query параметры в модель use case
func ToUseCaseRequest(dateStr string) (*getPickupTimes.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}
	return &getPickupTimes.Request{Date: date}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getPickupTimes.Response) *PickupTimesResponse {
	times := make([]string, len(resp.Times))
	for i, t := range resp.Times {
		times[i] = t.String()
	}

	return &PickupTimesResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Times: times,
	}
}
