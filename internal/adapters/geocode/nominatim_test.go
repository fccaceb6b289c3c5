package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ev-trip-service/internal/domain"
	"ev-trip-service/internal/ports"
)

type memoryCache struct {
	mu sync.Mutex
	m  map[string]domain.Coordinate
}

func newMemoryCache() *memoryCache {
	return &memoryCache{m: make(map[string]domain.Coordinate)}
}

func (c *memoryCache) Get(ctx context.Context, address string) (domain.Coordinate, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	coord, ok := c.m[address]
	return coord, ok, nil
}

func (c *memoryCache) Put(ctx context.Context, address string, coord domain.Coordinate) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[address] = coord
	return nil
}

func TestGeocodeResolvesAndCaches(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Ålesund", r.URL.Query().Get("q"))
		assert.Equal(t, "jsonv2", r.URL.Query().Get("format"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat": "62.4722", "lon": "6.1549"}]`))
	}))
	defer srv.Close()

	g, err := NewNominatimGeocoder(srv.URL, "test-agent", time.Second, newMemoryCache())
	require.NoError(t, err)

	coord, err := g.Geocode(context.Background(), "  Ålesund ")
	require.NoError(t, err)
	assert.Equal(t, domain.Coordinate{Lat: 62.4722, Lon: 6.1549}, coord)

	// Second lookup is served from the cache.
	coord, err = g.Geocode(context.Background(), "Ålesund")
	require.NoError(t, err)
	assert.Equal(t, domain.Coordinate{Lat: 62.4722, Lon: 6.1549}, coord)
	assert.Equal(t, 1, calls)
}

func TestGeocodeNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	g, err := NewNominatimGeocoder(srv.URL, "test-agent", time.Second, nil)
	require.NoError(t, err)

	_, err = g.Geocode(context.Background(), "Atlantis")
	assert.ErrorIs(t, err, ports.ErrNoResults)
}

func TestGeocodeRetriesTransientFailure(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat": "60.3913", "lon": "5.3221"}]`))
	}))
	defer srv.Close()

	g, err := NewNominatimGeocoder(srv.URL, "test-agent", time.Second, nil)
	require.NoError(t, err)

	coord, err := g.Geocode(context.Background(), "Bergen")
	require.NoError(t, err)
	assert.Equal(t, domain.Coordinate{Lat: 60.3913, Lon: 5.3221}, coord)
	assert.Equal(t, 3, calls)
}

func TestGeocodeClientErrorDoesNotRetry(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	g, err := NewNominatimGeocoder(srv.URL, "test-agent", time.Second, nil)
	require.NoError(t, err)

	_, err = g.Geocode(context.Background(), "Bergen")
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestGeocodeEmptyAddress(t *testing.T) {
	g, err := NewNominatimGeocoder("http://localhost:9", "test-agent", time.Second, nil)
	require.NoError(t, err)

	_, err = g.Geocode(context.Background(), "   ")
	assert.Error(t, err)
}

func TestNewNominatimGeocoderValidation(t *testing.T) {
	_, err := NewNominatimGeocoder("", "agent", time.Second, nil)
	assert.Error(t, err)

	_, err = NewNominatimGeocoder("http://localhost", " ", time.Second, nil)
	assert.Error(t, err)
}
