package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ev-trip-service/internal/domain"
)

// SQLite-backed implementation of the StationRepository port.
type SqliteStationRepository struct{ DB *sql.DB }

func NewSqliteStationRepository(db *sql.DB) *SqliteStationRepository {
	return &SqliteStationRepository{DB: db}
}

// Return a snapshot of all charging stations.
func (s *SqliteStationRepository) ListStations(ctx context.Context) ([]domain.ChargingStation, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite station repository: DB is nil")
	}

	query := `
	SELECT
		station_id,
		name,
		lat,
		lon,
		available,
		total,
		fast_charger,
		cost_per_unit
	FROM stations
	ORDER BY station_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stations: query stations table: %w", err)
	}
	defer rows.Close()

	stations := make([]domain.ChargingStation, 0, 32)
	for rows.Next() {
		var st domain.ChargingStation
		var fast int
		err := rows.Scan(
			&st.ID, &st.Name,
			&st.Coordinate.Lat, &st.Coordinate.Lon,
			&st.Available, &st.Total,
			&fast, &st.CostPerUnit,
		)
		if err != nil {
			return nil, fmt.Errorf("list stations: scan row: %w", err)
		}
		st.FastCharger = fast != 0
		stations = append(stations, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list stations: row iteration: %w", err)
	}

	return stations, nil
}
