package get_pickup_times

import (
	"time"

	"github.com/m04kA/Restaurant-BookingService/pkg/types"
)

// Request модель запроса времен самовывоза
type Request struct {
	Date time.Time // Дата, на которую запрашиваются времена (без времени)
}

// Response модель ответа со списком времен самовывоза
// Времена без вместимости: кухня не ограничена столами
type Response struct {
	Date  time.Time
	Times []types.TimeString
}
