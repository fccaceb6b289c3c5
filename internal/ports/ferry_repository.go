package ports

import (
	"context"

	"ev-trip-service/internal/domain"
)

// Port: a boundary for retrieving ferry timetable data.
type FerryRepository interface {
	// Retrieve all ferry routes with their scheduled departure times.
	ListFerryRoutes(ctx context.Context) ([]domain.FerryRoute, error)
}
