package ports

import (
	"context"

	"ev-trip-service/internal/domain"
)

// GeocodeCache is a persistent address -> coordinate cache consulted
// before issuing external geocoding calls. Keys are expected to be
// normalized by the caller.
type GeocodeCache interface {
	// Get returns the cached coordinate and whether it was present.
	Get(ctx context.Context, address string) (domain.Coordinate, bool, error)
	// Put stores or refreshes one address -> coordinate mapping.
	Put(ctx context.Context, address string, coord domain.Coordinate) error
}
