package storage

import (
	"context"
	"testing"
	"time"

	"restaurant-reservations/activity-svc/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewStore(rdb), mr
}

func TestStore_RecordAndTotals(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()
	now := time.Date(2024, 12, 31, 20, 0, 0, 0, time.UTC)

	events := []domain.Event{
		{Type: "user.created", Resource: "user", ID: 1, Timestamp: now},
		{Type: "user.created", Resource: "user", ID: 2, Timestamp: now},
		{Type: "user.deleted", Resource: "user", ID: 1, Timestamp: now},
		{Type: "reservation.created", Resource: "reservation", ID: 1, Timestamp: now},
	}
	for _, event := range events {
		require.NoError(t, store.Record(ctx, event))
	}

	totals, err := store.Totals(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(2), totals["user"]["created"])
	assert.Equal(t, int64(1), totals["user"]["deleted"])
	assert.Equal(t, int64(1), totals["reservation"]["created"])
	assert.Empty(t, totals["menu"])
	assert.Len(t, totals, len(domain.Resources))
}

func TestStore_Daily(t *testing.T) {
	store, mr := setupStore(t)
	ctx := context.Background()
	day := time.Date(2024, 12, 31, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		require.NoError(t, store.Record(ctx, domain.Event{Type: "reservation.created", Resource: "reservation", ID: i, Timestamp: day}))
	}
	require.NoError(t, store.Record(ctx, domain.Event{Type: "menu.created", Resource: "menu", ID: 1, Timestamp: day}))
	require.NoError(t, store.Record(ctx, domain.Event{Type: "user.created", Resource: "user", ID: 1, Timestamp: day.Add(24 * time.Hour)}))

	counts, err := store.Daily(ctx, day, 10)
	require.NoError(t, err)
	assert.Equal(t, []domain.EventCount{
		{Type: "reservation.created", Count: 3},
		{Type: "menu.created", Count: 1},
	}, counts)

	top, err := store.Daily(ctx, day, 1)
	require.NoError(t, err)
	assert.Len(t, top, 1)

	assert.Equal(t, dailyRetention, mr.TTL("activity:daily:2024-12-31"))
}

func TestStore_DailyEmpty(t *testing.T) {
	store, _ := setupStore(t)

	counts, err := store.Daily(context.Background(), time.Now(), 5)

	require.NoError(t, err)
	assert.Empty(t, counts)
	assert.NotNil(t, counts)
}
