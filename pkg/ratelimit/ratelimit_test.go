package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(start time.Time) (*MemoryStore, *time.Time) {
	current := start
	store := NewMemoryStore()
	store.now = func() time.Time { return current }
	return store, &current
}

func TestMemoryStore_AllowsUpToLimit(t *testing.T) {
	store, _ := newTestStore(time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC))
	id := Identifier("10.0.0.1", "create_reservation")

	for i := 0; i < 3; i++ {
		res := store.Check(id, 3, time.Minute)
		require.True(t, res.Allowed, "request %d should be allowed", i+1)
		assert.Equal(t, 2-i, res.Remaining)
	}

	res := store.Check(id, 3, time.Minute)
	assert.False(t, res.Allowed)
	assert.Equal(t, 0, res.Remaining)
}

func TestMemoryStore_WindowReset(t *testing.T) {
	start := time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC)
	store, now := newTestStore(start)
	id := Identifier("10.0.0.1", "create_order")

	for i := 0; i < 3; i++ {
		store.Check(id, 3, time.Minute)
	}
	require.False(t, store.Check(id, 3, time.Minute).Allowed)

	*now = start.Add(time.Minute + time.Second)

	res := store.Check(id, 3, time.Minute)
	assert.True(t, res.Allowed)
	assert.Equal(t, 2, res.Remaining)
}

func TestMemoryStore_ActionsCountedSeparately(t *testing.T) {
	store, _ := newTestStore(time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC))

	reservations := Identifier("10.0.0.1", "create_reservation")
	orders := Identifier("10.0.0.1", "create_order")

	for i := 0; i < 3; i++ {
		store.Check(reservations, 3, time.Minute)
	}
	require.False(t, store.Check(reservations, 3, time.Minute).Allowed)

	assert.True(t, store.Check(orders, 3, time.Minute).Allowed)
}

func TestMemoryStore_ClientsCountedSeparately(t *testing.T) {
	store, _ := newTestStore(time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC))

	for i := 0; i < 3; i++ {
		store.Check(Identifier("10.0.0.1", "create_reservation"), 3, time.Minute)
	}

	res := store.Check(Identifier("10.0.0.2", "create_reservation"), 3, time.Minute)
	assert.True(t, res.Allowed)
}

func TestMemoryStore_PrunesExpiredRecords(t *testing.T) {
	start := time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC)
	store, now := newTestStore(start)

	store.Check(Identifier("10.0.0.1", "create_reservation"), 3, time.Minute)
	store.Check(Identifier("10.0.0.2", "create_reservation"), 3, time.Minute)
	require.Len(t, store.records, 2)

	*now = start.Add(2 * time.Minute)
	store.Check(Identifier("10.0.0.3", "create_reservation"), 3, time.Minute)

	assert.Len(t, store.records, 1)
}

func TestIsLocal(t *testing.T) {
	assert.True(t, IsLocal("127.0.0.1"))
	assert.True(t, IsLocal("::1"))
	assert.True(t, IsLocal("localhost"))
	assert.True(t, IsLocal(Identifier("127.0.0.1", "create_reservation")))

	assert.False(t, IsLocal("10.0.0.1"))
	assert.False(t, IsLocal(Identifier("192.168.1.10", "create_order")))
}

func TestIdentifier(t *testing.T) {
	assert.Equal(t, "10.0.0.1|create_order", Identifier("10.0.0.1", "create_order"))
}
