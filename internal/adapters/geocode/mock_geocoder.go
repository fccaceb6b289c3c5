package geocode

import (
	"context"
	"fmt"

	"ev-trip-service/internal/domain"
	"ev-trip-service/internal/ports"
)

type MockEntry struct {
	Address string
	Lat     float64
	Lon     float64
}

// MockGeocoder resolves addresses from a fixed table. Unknown
// addresses fail with ports.ErrNoResults, like the real adapter.
type MockGeocoder struct {
	m map[string]domain.Coordinate
}

func NewMockGeocoder(entries []MockEntry) *MockGeocoder {
	m := make(map[string]domain.Coordinate, len(entries))
	for _, e := range entries {
		m[e.Address] = domain.Coordinate{Lat: e.Lat, Lon: e.Lon}
	}
	return &MockGeocoder{m: m}
}

func (g *MockGeocoder) Geocode(ctx context.Context, address string) (domain.Coordinate, error) {
	c, ok := g.m[address]
	if !ok {
		return domain.Coordinate{}, fmt.Errorf("geocode %q: %w", address, ports.ErrNoResults)
	}
	return c, nil
}
