package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Restaurant-BookingService/internal/domain"
	settingsRepo "github.com/m04kA/Restaurant-BookingService/internal/infra/storage/settings"
	"github.com/m04kA/Restaurant-BookingService/internal/service/settings/models"
)

type mockSettingsRepo struct {
	settings *domain.ReservationSettings
	getErr   error

	upserted  *domain.ReservationSettings
	upsertErr error
}

func (m *mockSettingsRepo) GetSettings(_ context.Context) (*domain.ReservationSettings, error) {
	return m.settings, m.getErr
}

func (m *mockSettingsRepo) UpsertSettings(_ context.Context, s *domain.ReservationSettings) (*domain.ReservationSettings, error) {
	if m.upsertErr != nil {
		return nil, m.upsertErr
	}
	m.upserted = s
	return s, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validUpdateRequest() *models.UpdateSettingsRequest {
	return &models.UpdateSettingsRequest{
		StartTime:           "10:00",
		EndTime:             "22:00",
		SlotDurationMinutes: 45,
		MaxTables:           20,
		SeatsPerTable:       6,
		ClosedWeekdays:      []int{1},
		MinAdvanceHours:     3,
		BookingWindowDays:   60,
		AutoConfirm:         true,
	}
}

func TestGet_ReturnsDefaultsWhenAbsent(t *testing.T) {
	repo := &mockSettingsRepo{getErr: settingsRepo.ErrSettingsNotFound}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultOpenTime, resp.StartTime)
	assert.Equal(t, domain.DefaultCloseTime, resp.EndTime)
	assert.Equal(t, domain.DefaultSlotDurationMinutes, resp.SlotDurationMinutes)
	assert.Equal(t, domain.DefaultMaxTables, resp.MaxTables)
	assert.False(t, resp.AutoConfirm)
}

func TestGet_RepositoryError(t *testing.T) {
	repo := &mockSettingsRepo{getErr: errors.New("db down")}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Get(context.Background())

	require.ErrorIs(t, err, ErrInternal)
}

func TestUpdate_Success(t *testing.T) {
	repo := &mockSettingsRepo{}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Update(context.Background(), validUpdateRequest())

	require.NoError(t, err)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, 45, resp.SlotDurationMinutes)
	assert.True(t, resp.AutoConfirm)

	require.NotNil(t, repo.upserted)
	assert.Equal(t, 20, repo.upserted.MaxTables)
}

func TestUpdate_InvalidValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(req *models.UpdateSettingsRequest)
	}{
		{"malformed start time", func(r *models.UpdateSettingsRequest) { r.StartTime = "25:00" }},
		{"malformed end time", func(r *models.UpdateSettingsRequest) { r.EndTime = "abc" }},
		{"open not before close", func(r *models.UpdateSettingsRequest) { r.StartTime, r.EndTime = "22:00", "10:00" }},
		{"zero slot duration", func(r *models.UpdateSettingsRequest) { r.SlotDurationMinutes = 0 }},
		{"slot duration over a day", func(r *models.UpdateSettingsRequest) { r.SlotDurationMinutes = 1441 }},
		{"zero max tables", func(r *models.UpdateSettingsRequest) { r.MaxTables = 0 }},
		{"zero seats per table", func(r *models.UpdateSettingsRequest) { r.SeatsPerTable = 0 }},
		{"negative advance hours", func(r *models.UpdateSettingsRequest) { r.MinAdvanceHours = -1 }},
		{"zero booking window", func(r *models.UpdateSettingsRequest) { r.BookingWindowDays = 0 }},
		{"weekday out of range", func(r *models.UpdateSettingsRequest) { r.ClosedWeekdays = []int{7} }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mockSettingsRepo{}
			svc := NewService(repo, nopLogger{})

			req := validUpdateRequest()
			tc.mutate(req)

			_, err := svc.Update(context.Background(), req)

			require.ErrorIs(t, err, ErrInvalidSettings)
			assert.Nil(t, repo.upserted)
		})
	}
}

func TestUpdate_RepositoryError(t *testing.T) {
	repo := &mockSettingsRepo{upsertErr: errors.New("db down")}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Update(context.Background(), validUpdateRequest())

	require.ErrorIs(t, err, ErrInternal)
}
