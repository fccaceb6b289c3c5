package ports

import (
	"context"

	"ev-trip-service/internal/domain"
)

// Port: a boundary for retrieving charging-station snapshots from a
// data source. The returned slice is a point-in-time copy; the engine
// never observes later availability changes.
type StationRepository interface {
	// Retrieve all known charging stations.
	ListStations(ctx context.Context) ([]domain.ChargingStation, error)
}
