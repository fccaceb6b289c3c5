package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ev-trip-service/internal/domain"
)

// SQLite-backed implementation of the FerryRepository port. Scheduled
// departures live in a child table and are folded into each route,
// ordered ascending so the engine can roll through a day's timetable.
type SqliteFerryRepository struct{ DB *sql.DB }

func NewSqliteFerryRepository(db *sql.DB) *SqliteFerryRepository {
	return &SqliteFerryRepository{DB: db}
}

// Return all ferry routes with their departure times.
func (s *SqliteFerryRepository) ListFerryRoutes(ctx context.Context) ([]domain.FerryRoute, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite ferry repository: DB is nil")
	}

	routeQuery := `
	SELECT
		name,
		from_port,
		to_port,
		from_lat,
		from_lon,
		to_lat,
		to_lon,
		duration_minutes
	FROM ferry_routes
	ORDER BY name;
	`
	rows, err := s.DB.QueryContext(ctx, routeQuery)
	if err != nil {
		return nil, fmt.Errorf("list ferry routes: query ferry_routes table: %w", err)
	}
	defer rows.Close()

	routes := make([]domain.FerryRoute, 0, 8)
	for rows.Next() {
		var r domain.FerryRoute
		err := rows.Scan(
			&r.Name, &r.FromPort, &r.ToPort,
			&r.FromCoordinate.Lat, &r.FromCoordinate.Lon,
			&r.ToCoordinate.Lat, &r.ToCoordinate.Lon,
			&r.DurationMinutes,
		)
		if err != nil {
			return nil, fmt.Errorf("list ferry routes: scan route row: %w", err)
		}
		routes = append(routes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list ferry routes: route iteration: %w", err)
	}

	departureQuery := `
	SELECT route_name, depart_time
	FROM ferry_departures
	ORDER BY route_name, depart_time;
	`
	depRows, err := s.DB.QueryContext(ctx, departureQuery)
	if err != nil {
		return nil, fmt.Errorf("list ferry routes: query ferry_departures table: %w", err)
	}
	defer depRows.Close()

	byRoute := make(map[string][]string, len(routes))
	for depRows.Next() {
		var name, departTime string
		if err := depRows.Scan(&name, &departTime); err != nil {
			return nil, fmt.Errorf("list ferry routes: scan departure row: %w", err)
		}
		byRoute[name] = append(byRoute[name], departTime)
	}
	if err := depRows.Err(); err != nil {
		return nil, fmt.Errorf("list ferry routes: departure iteration: %w", err)
	}

	for i := range routes {
		routes[i].ScheduledTimes = byRoute[routes[i].Name]
	}

	return routes, nil
}
