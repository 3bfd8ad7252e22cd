package create_reservation

import (
	"time"

	"github.com/m04kA/Restaurant-BookingService/internal/domain"
	createReservation "github.com/m04kA/Restaurant-BookingService/internal/usecase/create_reservation"
	"github.com/m04kA/Restaurant-BookingService/pkg/types"
)

// CreateReservationRequest HTTP request model
// UserID опционален: гостевые бронирования создаются без аккаунта
type CreateReservationRequest struct {
	UserID        int64   `json:"userId,omitempty"`
	Date          string  `json:"date"`      // "2026-09-01"
	StartTime     string  `json:"startTime"` // "18:30"
	PartySize     int     `json:"partySize"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone string  `json:"customerPhone"`
	Notes         *string `json:"notes,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID               int64   `json:"id"`
	ConfirmationCode string  `json:"confirmationCode"`
	Date             string  `json:"date"`
	StartTime        string  `json:"startTime"`
	DurationMinutes  int     `json:"durationMinutes"`
	PartySize        int     `json:"partySize"`
	Status           string  `json:"status"`
	CustomerName     string  `json:"customerName"`
	CustomerEmail    string  `json:"customerEmail"`
	CustomerPhone    string  `json:"customerPhone"`
	Notes            *string `json:"notes,omitempty"`
	CreatedAt        string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(clientIP string) (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		UserID:        r.UserID,
		Date:          date,
		StartTime:     startTime,
		PartySize:     r.PartySize,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		Notes:         r.Notes,
		ClientIP:      clientIP,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:               resp.ID,
		ConfirmationCode: resp.ConfirmationCode,
		Date:             resp.Date.Format(domain.DateFormat),
		StartTime:        resp.StartTime.String(),
		DurationMinutes:  resp.DurationMinutes,
		PartySize:        resp.PartySize,
		Status:           resp.Status,
		CustomerName:     resp.CustomerName,
		CustomerEmail:    resp.CustomerEmail,
		CustomerPhone:    resp.CustomerPhone,
		Notes:            resp.Notes,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
	}
}
