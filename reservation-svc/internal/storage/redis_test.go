package storage

import (
	"context"
	"testing"
	"time"

	"restaurant-reservations/reservation-svc/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisCache(client, time.Minute), mr
}

func TestRedisCache_RecordKey(t *testing.T) {
	cache, _ := setupCache(t)
	assert.Equal(t, "reservation:12", cache.RecordKey("reservation", 12))
}

func TestRedisCache_SetGetDelete(t *testing.T) {
	cache, mr := setupCache(t)
	ctx := context.Background()
	key := cache.RecordKey("restaurant", 3)

	var miss domain.Restaurant
	found, err := cache.Get(ctx, key, &miss)
	require.NoError(t, err)
	assert.False(t, found)

	rest := domain.Restaurant{ID: 3, Name: "Casa", Location: "Main St", MaxCapacity: 50}
	require.NoError(t, cache.Set(ctx, key, rest))
	assert.Equal(t, time.Minute, mr.TTL(key))

	var hit domain.Restaurant
	found, err = cache.Get(ctx, key, &hit)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, rest, hit)

	require.NoError(t, cache.Delete(ctx, key))
	assert.False(t, mr.Exists(key))
}

func TestRedisCache_ReservationKeepsDateLayout(t *testing.T) {
	cache, mr := setupCache(t)
	ctx := context.Background()
	key := cache.RecordKey("reservation", 1)

	res := domain.Reservation{ID: 1, UserID: 2, RestaurantID: 3, ReservationDate: time.Date(2024, 12, 31, 20, 0, 0, 0, time.UTC), Guests: 4}
	require.NoError(t, cache.Set(ctx, key, res))

	raw, err := mr.Get(key)
	require.NoError(t, err)
	assert.Contains(t, raw, `"reservation_date":"2024-12-31T20:00:00"`)

	var cached domain.Reservation
	found, err := cache.Get(ctx, key, &cached)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, res, cached)
}

func TestRedisCache_CorruptPayload(t *testing.T) {
	cache, mr := setupCache(t)
	require.NoError(t, mr.Set("user:1", "not-json"))

	var user domain.User
	found, err := cache.Get(context.Background(), "user:1", &user)

	assert.Error(t, err)
	assert.False(t, found)
}
