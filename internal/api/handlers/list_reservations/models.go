package list_reservations

import (
	"fmt"
	"time"

	"github.com/m04kA/Restaurant-BookingService/internal/domain"
	reservationModels "github.com/m04kA/Restaurant-BookingService/internal/service/reservations/models"
)

// ToServiceRequest собирает фильтр из query параметров
// date и startDate/endDate взаимоисключающие: точная дата имеет приоритет
func ToServiceRequest(dateStr, startDateStr, endDateStr, statusStr, includeInactiveStr string) (*reservationModels.ListReservationsRequest, error) {
	req := &reservationModels.ListReservationsRequest{
		IncludeInactive: includeInactiveStr == "true",
	}

	if dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, fmt.Errorf("invalid date: %w", err)
		}
		req.Date = &date
	} else {
		if startDateStr != "" {
			startDate, err := time.Parse(domain.DateFormat, startDateStr)
			if err != nil {
				return nil, fmt.Errorf("invalid startDate: %w", err)
			}
			req.StartDate = &startDate
		}
		if endDateStr != "" {
			endDate, err := time.Parse(domain.DateFormat, endDateStr)
			if err != nil {
				return nil, fmt.Errorf("invalid endDate: %w", err)
			}
			req.EndDate = &endDate
		}
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	return req, nil
}
