package create_reservation

import (
	"time"

	"github.com/m04kA/Restaurant-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
// ClientIP используется как идентификатор для rate limiting
type Request struct {
	UserID        int64 // 0 = гостевое бронирование
	Date          time.Time
	StartTime     types.TimeString
	PartySize     int
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Notes         *string
	ClientIP      string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID               int64
	ConfirmationCode string
	Date             time.Time
	StartTime        types.TimeString
	DurationMinutes  int
	PartySize        int
	Status           string
	CustomerName     string
	CustomerEmail    string
	CustomerPhone    string
	Notes            *string
	CreatedAt        time.Time
}
