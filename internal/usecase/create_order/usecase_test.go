package create_order

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Restaurant-BookingService/internal/domain"
	"github.com/m04kA/Restaurant-BookingService/pkg/ptr"
	"github.com/m04kA/Restaurant-BookingService/pkg/ratelimit"
	"github.com/m04kA/Restaurant-BookingService/pkg/types"
)

type mockOrderRepo struct {
	err     error
	created *domain.Order
}

func (m *mockOrderRepo) Create(_ context.Context, o *domain.Order) (*domain.Order, error) {
	if m.err != nil {
		return nil, m.err
	}
	created := *o
	created.ID = 7
	created.CreatedAt = time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC)
	m.created = &created
	return &created, nil
}

type mockMenuRepo struct {
	catalog domain.MenuCatalog
	err     error
}

func (m *mockMenuRepo) GetByIDs(_ context.Context, _ []int64) (domain.MenuCatalog, error) {
	return m.catalog, m.err
}

type mockSettingsRepo struct {
	settings *domain.ReservationSettings
	weekly   *domain.WeeklySchedule
}

func (m *mockSettingsRepo) GetSettings(_ context.Context) (*domain.ReservationSettings, error) {
	return m.settings, nil
}

func (m *mockSettingsRepo) GetWeeklySchedule(_ context.Context) (*domain.WeeklySchedule, error) {
	return m.weekly, nil
}

type mockMailSender struct {
	err  error
	sent chan *domain.Order
}

func newMockMailSender() *mockMailSender {
	return &mockMailSender{sent: make(chan *domain.Order, 1)}
}

func (m *mockMailSender) SendOrderReceipt(_ context.Context, o *domain.Order) error {
	m.sent <- o
	return m.err
}

type mockRateLimiter struct {
	allowed     bool
	identifiers []string
}

func (m *mockRateLimiter) Check(identifier string, maxRequests int, _ time.Duration) ratelimit.Result {
	m.identifiers = append(m.identifiers, identifier)
	if m.allowed {
		return ratelimit.Result{Allowed: true, Remaining: maxRequests - 1}
	}
	return ratelimit.Result{Allowed: false}
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Понедельник, 12:00
var testNow = time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC)

type testEnv struct {
	uc          *UseCase
	orders      *mockOrderRepo
	menu        *mockMenuRepo
	settings    *mockSettingsRepo
	mail        *mockMailSender
	rateLimiter *mockRateLimiter
}

func newTestEnv() *testEnv {
	env := &testEnv{
		orders: &mockOrderRepo{},
		menu: &mockMenuRepo{catalog: domain.NewMenuCatalog([]*domain.MenuItem{
			{ID: 1, Name: "Маргарита", Price: 12.50, Available: true},
			{ID: 2, Name: "Цезарь", Price: 8.30, Available: true},
			{ID: 3, Name: "Сезонный суп", Price: 6.00, Available: false},
		})},
		settings:    &mockSettingsRepo{settings: domain.DefaultReservationSettings()},
		mail:        newMockMailSender(),
		rateLimiter: &mockRateLimiter{allowed: true},
	}
	env.uc = &UseCase{
		orderRepo:       env.orders,
		menuRepo:        env.menu,
		settingsRepo:    env.settings,
		mailClient:      env.mail,
		rateLimiter:     env.rateLimiter,
		timeProvider:    &fixedTimeProvider{now: testNow},
		logger:          nopLogger{},
		taxRate:         0.19,
		rateLimitMax:    3,
		rateLimitWindow: time.Minute,
	}
	return env
}

func deliveryRequest() *Request {
	return &Request{
		Type:            domain.OrderTypeDelivery,
		CustomerName:    "Иван Петров",
		CustomerEmail:   "ivan@example.com",
		CustomerPhone:   "+79991234567",
		DeliveryAddress: ptr.Ptr("ул. Пушкина, д. 10, кв. 5"),
		Lines: []RequestLine{
			{MenuItemID: 1, Quantity: 2, Price: 0.01},
		},
		ClientIP: "10.0.0.1",
	}
}

func pickupRequest() *Request {
	req := deliveryRequest()
	req.Type = domain.OrderTypePickup
	req.DeliveryAddress = nil
	req.PickupTime = ptr.Ptr(types.TimeString("18:00"))
	return req
}

func TestExecute_ServerSideTotals(t *testing.T) {
	env := newTestEnv()

	resp, err := env.uc.Execute(context.Background(), deliveryRequest())

	require.NoError(t, err)
	require.Len(t, resp.Lines, 1)
	// Присланная клиентом цена 0.01 не участвует в расчете
	assert.Equal(t, 12.50, resp.Lines[0].UnitPrice)
	assert.Equal(t, 25.00, resp.Lines[0].LineTotal)
	assert.Equal(t, 25.00, resp.Subtotal)
	assert.Equal(t, 4.75, resp.Tax)
	assert.Equal(t, 29.75, resp.Total)
	assert.Equal(t, string(domain.OrderStatusReceived), resp.Status)
	assert.True(t, strings.HasPrefix(resp.OrderNumber, "ORD_20260907_"))

	select {
	case sent := <-env.mail.sent:
		assert.Equal(t, resp.OrderNumber, sent.OrderNumber)
		assert.Equal(t, 29.75, sent.Total)
	case <-time.After(time.Second):
		t.Fatal("receipt email was not sent")
	}
}

func TestExecute_RateLimited(t *testing.T) {
	env := newTestEnv()
	env.rateLimiter.allowed = false

	_, err := env.uc.Execute(context.Background(), deliveryRequest())

	require.ErrorIs(t, err, ErrRateLimited)
	require.Len(t, env.rateLimiter.identifiers, 1)
	assert.Equal(t, "10.0.0.1|create_order", env.rateLimiter.identifiers[0])
}

func TestExecute_LoopbackBypassesRateLimit(t *testing.T) {
	env := newTestEnv()
	env.rateLimiter.allowed = false

	req := deliveryRequest()
	req.ClientIP = "127.0.0.1"

	_, err := env.uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Empty(t, env.rateLimiter.identifiers)
}

func TestExecute_DeliveryRequiresAddress(t *testing.T) {
	env := newTestEnv()

	req := deliveryRequest()
	req.DeliveryAddress = nil

	_, err := env.uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrValidation)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Fields, 1)
	assert.Equal(t, "DeliveryAddress", ve.Fields[0].Field)
}

func TestExecute_PickupRequiresTime(t *testing.T) {
	env := newTestEnv()

	req := pickupRequest()
	req.PickupTime = nil

	_, err := env.uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrValidation)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Fields, 1)
	assert.Equal(t, "PickupTime", ve.Fields[0].Field)
}

func TestExecute_UnknownOrderTypeRejected(t *testing.T) {
	env := newTestEnv()

	req := deliveryRequest()
	req.Type = domain.OrderType("takeaway")

	_, err := env.uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrValidation)
}

func TestExecute_PickupWithinOperatingHours(t *testing.T) {
	env := newTestEnv()

	resp, err := env.uc.Execute(context.Background(), pickupRequest())

	require.NoError(t, err)
	require.NotNil(t, resp.PickupTime)
	assert.Equal(t, types.TimeString("18:00"), *resp.PickupTime)
}

func TestExecute_PickupOutsideOperatingHours(t *testing.T) {
	env := newTestEnv()

	req := pickupRequest()
	req.PickupTime = ptr.Ptr(types.TimeString("22:00"))

	_, err := env.uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrInvalidPickupTime)
}

func TestExecute_PickupOnClosedDay(t *testing.T) {
	env := newTestEnv()
	env.settings.settings.ClosedWeekdays = []time.Weekday{time.Monday}

	_, err := env.uc.Execute(context.Background(), pickupRequest())

	require.ErrorIs(t, err, ErrRestaurantClosed)
}

func TestExecute_UnknownMenuItem(t *testing.T) {
	env := newTestEnv()

	req := deliveryRequest()
	req.Lines = []RequestLine{{MenuItemID: 999, Quantity: 1}}

	_, err := env.uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrItemNotFound)
	assert.Nil(t, env.orders.created)
}

func TestExecute_UnavailableMenuItem(t *testing.T) {
	env := newTestEnv()

	req := deliveryRequest()
	req.Lines = []RequestLine{
		{MenuItemID: 1, Quantity: 1},
		{MenuItemID: 3, Quantity: 1},
	}

	_, err := env.uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrItemUnavailable)
	assert.Nil(t, env.orders.created)
}

func TestExecute_InvalidQuantity(t *testing.T) {
	env := newTestEnv()

	req := deliveryRequest()
	req.Lines = []RequestLine{{MenuItemID: 1, Quantity: 0}}

	_, err := env.uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_MailFailureDoesNotFailRequest(t *testing.T) {
	env := newTestEnv()
	env.mail.err = errors.New("smtp unavailable")

	resp, err := env.uc.Execute(context.Background(), deliveryRequest())

	require.NoError(t, err)
	assert.NotEmpty(t, resp.OrderNumber)

	select {
	case <-env.mail.sent:
	case <-time.After(time.Second):
		t.Fatal("receipt email was not attempted")
	}
}

func TestExecute_RepositoryErrorIsInternal(t *testing.T) {
	env := newTestEnv()
	env.orders.err = errors.New("db down")

	_, err := env.uc.Execute(context.Background(), deliveryRequest())

	require.ErrorIs(t, err, ErrInternal)
}
