package ports

import (
	"context"
	"errors"

	"ev-trip-service/internal/domain"
)

// ErrNoResults reports that a geocoding backend returned no match for
// an address. Adapters wrap it so callers can distinguish "address
// unknown" from transport failures.
var ErrNoResults = errors.New("no geocode results")

// Contract for resolving a free-text address to a coordinate.
type Geocoder interface {
	// Resolve an address string to a coordinate with a single attempt.
	// Callers own timeout and cancellation via ctx.
	Geocode(ctx context.Context, address string) (domain.Coordinate, error)
}
