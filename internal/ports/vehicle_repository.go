package ports

import (
	"context"
	"errors"

	"ev-trip-service/internal/domain"
)

// ErrVehicleNotFound reports a lookup for a vehicle id that is not in
// the catalog.
var ErrVehicleNotFound = errors.New("vehicle not found")

// Port: a boundary for the vehicle catalog.
type VehicleRepository interface {
	// Retrieve the full vehicle catalog.
	ListVehicles(ctx context.Context) ([]domain.Vehicle, error)
	// Retrieve a single vehicle by catalog id.
	GetVehicle(ctx context.Context, id string) (domain.Vehicle, error)
}
