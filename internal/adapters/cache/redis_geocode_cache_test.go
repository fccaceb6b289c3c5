package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ev-trip-service/internal/domain"
)

func newTestCache(t *testing.T) *RedisGeocodeCache {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisGeocodeCache(client, time.Hour)
}

func TestRedisGeocodeCachePutGet(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	want := domain.Coordinate{Lat: 62.4722, Lon: 6.1549}
	require.NoError(t, c.Put(ctx, "Ålesund", want))

	got, ok, err := c.Get(ctx, "Ålesund")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestRedisGeocodeCacheMiss(t *testing.T) {
	c := newTestCache(t)

	_, ok, err := c.Get(context.Background(), "Bergen")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisGeocodeCacheRejectsEmptyKeys(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	_, _, err := c.Get(ctx, "   ")
	assert.Error(t, err)

	err = c.Put(ctx, "", domain.Coordinate{})
	assert.Error(t, err)
}

func TestRedisGeocodeCacheNegativeCoordinates(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	want := domain.Coordinate{Lat: -33.8688, Lon: 151.2093}
	require.NoError(t, c.Put(ctx, "Sydney", want))

	got, ok, err := c.Get(ctx, "Sydney")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got)
}
