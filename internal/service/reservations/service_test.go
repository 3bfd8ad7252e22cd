package reservations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Restaurant-BookingService/internal/domain"
	reservationRepo "github.com/m04kA/Restaurant-BookingService/internal/infra/storage/reservation"
	"github.com/m04kA/Restaurant-BookingService/internal/service/reservations/models"
	"github.com/m04kA/Restaurant-BookingService/pkg/ptr"
)

type mockRepo struct {
	reservation *domain.Reservation
	getErr      error

	byUser    []*domain.Reservation
	byUserErr error

	filtered  []*domain.Reservation
	filterErr error

	updatedStatus   *domain.ReservationStatus
	updateErr       error
	cancelledReason *string
	cancelErr       error
}

func (m *mockRepo) GetByID(_ context.Context, _ int64) (*domain.Reservation, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.reservation, nil
}

func (m *mockRepo) GetByUserID(_ context.Context, _ int64, _ *domain.ReservationStatus) ([]*domain.Reservation, error) {
	return m.byUser, m.byUserErr
}

func (m *mockRepo) GetWithFilter(_ context.Context, _ domain.ReservationsFilter) ([]*domain.Reservation, error) {
	return m.filtered, m.filterErr
}

func (m *mockRepo) UpdateStatus(_ context.Context, _ int64, status domain.ReservationStatus) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updatedStatus = &status
	return nil
}

func (m *mockRepo) Cancel(_ context.Context, _ int64, reason string) error {
	if m.cancelErr != nil {
		return m.cancelErr
	}
	m.cancelledReason = &reason
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testReservation(status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:               1,
		ConfirmationCode: "code-1",
		UserID:           10,
		Date:             time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		StartTime:        "18:00",
		DurationMinutes:  30,
		PartySize:        4,
		Status:           status,
		CustomerName:     "Иван Петров",
		CustomerEmail:    "ivan@example.com",
		CustomerPhone:    "+79991234567",
	}
}

func TestGetByID_OwnerOnly(t *testing.T) {
	repo := &mockRepo{reservation: testReservation(domain.StatusConfirmed)}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)

	_, err = svc.GetByID(context.Background(), 1, 99)
	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &mockRepo{getErr: reservationRepo.ErrReservationNotFound}
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetByID(context.Background(), 1, 10)

	require.ErrorIs(t, err, ErrReservationNotFound)
}

func TestGetUserReservations_InvalidStatus(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{
		UserID: 10,
		Status: ptr.Ptr("unknown"),
	})

	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel_Success(t *testing.T) {
	repo := &mockRepo{reservation: testReservation(domain.StatusConfirmed)}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelReservationRequest{
		UserID:             10,
		CancellationReason: "планы изменились",
	})

	require.NoError(t, err)
	require.NotNil(t, repo.cancelledReason)
	assert.Equal(t, "планы изменились", *repo.cancelledReason)
}

func TestCancel_AccessDenied(t *testing.T) {
	repo := &mockRepo{reservation: testReservation(domain.StatusConfirmed)}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelReservationRequest{UserID: 99})

	require.ErrorIs(t, err, ErrAccessDenied)
	assert.Nil(t, repo.cancelledReason)
}

func TestCancel_TerminalStatusRejected(t *testing.T) {
	for _, status := range []domain.ReservationStatus{domain.StatusCancelled, domain.StatusCompleted} {
		repo := &mockRepo{reservation: testReservation(status)}
		svc := NewService(repo, nopLogger{})

		err := svc.Cancel(context.Background(), 1, &models.CancelReservationRequest{UserID: 10})

		require.ErrorIs(t, err, ErrCannotCancel, "status=%s", status)
	}
}

func TestUpdateStatus_TransitionMatrix(t *testing.T) {
	cases := []struct {
		from    domain.ReservationStatus
		to      string
		allowed bool
	}{
		{domain.StatusPending, "confirmed", true},
		{domain.StatusPending, "cancelled", true},
		{domain.StatusPending, "completed", false},
		{domain.StatusConfirmed, "cancelled", true},
		{domain.StatusConfirmed, "completed", true},
		{domain.StatusConfirmed, "pending", false},
		{domain.StatusCancelled, "confirmed", false},
		{domain.StatusCompleted, "pending", false},
	}

	for _, tc := range cases {
		repo := &mockRepo{reservation: testReservation(tc.from)}
		svc := NewService(repo, nopLogger{})

		err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: tc.to})

		if tc.allowed {
			require.NoError(t, err, "%s -> %s", tc.from, tc.to)
			require.NotNil(t, repo.updatedStatus)
			assert.Equal(t, domain.ReservationStatus(tc.to), *repo.updatedStatus)
		} else {
			require.ErrorIs(t, err, ErrInvalidTransition, "%s -> %s", tc.from, tc.to)
		}
	}
}

func TestUpdateStatus_InvalidStatusValue(t *testing.T) {
	repo := &mockRepo{reservation: testReservation(domain.StatusPending)}
	svc := NewService(repo, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "unknown"})

	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestRestore_OnlyFromTerminal(t *testing.T) {
	for _, status := range []domain.ReservationStatus{domain.StatusCancelled, domain.StatusCompleted} {
		repo := &mockRepo{reservation: testReservation(status)}
		svc := NewService(repo, nopLogger{})

		err := svc.Restore(context.Background(), 1)

		require.NoError(t, err, "status=%s", status)
		require.NotNil(t, repo.updatedStatus)
		assert.Equal(t, domain.StatusPending, *repo.updatedStatus)
	}

	for _, status := range []domain.ReservationStatus{domain.StatusPending, domain.StatusConfirmed} {
		repo := &mockRepo{reservation: testReservation(status)}
		svc := NewService(repo, nopLogger{})

		err := svc.Restore(context.Background(), 1)

		require.ErrorIs(t, err, ErrCannotRestore, "status=%s", status)
	}
}

func TestRestore_NotFound(t *testing.T) {
	repo := &mockRepo{getErr: reservationRepo.ErrReservationNotFound}
	svc := NewService(repo, nopLogger{})

	err := svc.Restore(context.Background(), 1)

	require.ErrorIs(t, err, ErrReservationNotFound)
}

func TestList_RepositoryError(t *testing.T) {
	repo := &mockRepo{filterErr: errors.New("db down")}
	svc := NewService(repo, nopLogger{})

	_, err := svc.List(context.Background(), &models.ListReservationsRequest{})

	require.ErrorIs(t, err, ErrInternal)
}
