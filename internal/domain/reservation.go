package domain

import (
	"time"

	"github.com/m04kA/Restaurant-BookingService/pkg/types"
)

// ReservationStatus represents the status of a table reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
	StatusCompleted ReservationStatus = "completed"
)

// Reservation represents a table reservation in the system
type Reservation struct {
	ID               int64
	ConfirmationCode string
	UserID           int64 // 0 = гостевое бронирование без аккаунта
	Date             time.Time
	StartTime        types.TimeString
	DurationMinutes  int
	PartySize        int
	Status           ReservationStatus

	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Notes         *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation occupies capacity
// Только pending и confirmed учитываются при подсчете занятости слотов
func (r *Reservation) IsActive() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// CanBeCancelled returns true if the reservation can be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// IsTerminal returns true if the reservation is in a terminal state
func (r *Reservation) IsTerminal() bool {
	return r.Status == StatusCancelled || r.Status == StatusCompleted
}

// CanTransitionTo проверяет допустимость перехода статуса (действия администратора)
// pending -> confirmed | cancelled
// confirmed -> cancelled | completed
// Возврат из терминального статуса возможен только через Restore
func (r *Reservation) CanTransitionTo(to ReservationStatus) bool {
	switch r.Status {
	case StatusPending:
		return to == StatusConfirmed || to == StatusCancelled
	case StatusConfirmed:
		return to == StatusCancelled || to == StatusCompleted
	default:
		return false
	}
}

// CanBeRestored returns true if an admin can restore the reservation to pending
func (r *Reservation) CanBeRestored() bool {
	return r.IsTerminal()
}

// ReservationsFilter фильтр для получения бронирований ресторана
type ReservationsFilter struct {
	Date            *time.Time         // Фильтр по дате (опционально)
	StartDate       *time.Time         // Начало периода (опционально)
	EndDate         *time.Time         // Конец периода (опционально)
	Status          *ReservationStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли отмененные и завершенные бронирования
}
