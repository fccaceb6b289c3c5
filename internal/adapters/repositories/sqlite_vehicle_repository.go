package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ev-trip-service/internal/domain"
	"ev-trip-service/internal/ports"
)

// SQLite-backed implementation of the VehicleRepository port.
type SqliteVehicleRepository struct{ DB *sql.DB }

func NewSqliteVehicleRepository(db *sql.DB) *SqliteVehicleRepository {
	return &SqliteVehicleRepository{DB: db}
}

// Return the full vehicle catalog.
func (s *SqliteVehicleRepository) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite vehicle repository: DB is nil")
	}

	query := `
	SELECT
		vehicle_id,
		name,
		battery_capacity_kwh,
		range_km,
		consumption_kwh_per_100km
	FROM vehicles
	ORDER BY vehicle_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: query vehicles table: %w", err)
	}
	defer rows.Close()

	vehicles := make([]domain.Vehicle, 0, 16)
	for rows.Next() {
		var v domain.Vehicle
		err := rows.Scan(&v.ID, &v.Name, &v.BatteryCapacityKwh, &v.RangeKm, &v.ConsumptionKwhPer100km)
		if err != nil {
			return nil, fmt.Errorf("list vehicles: scan row: %w", err)
		}
		vehicles = append(vehicles, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list vehicles: row iteration: %w", err)
	}

	return vehicles, nil
}

// Return a single vehicle by catalog id.
func (s *SqliteVehicleRepository) GetVehicle(ctx context.Context, id string) (domain.Vehicle, error) {
	if s.DB == nil {
		return domain.Vehicle{}, errors.New("sqlite vehicle repository: DB is nil")
	}

	query := `
	SELECT
		vehicle_id,
		name,
		battery_capacity_kwh,
		range_km,
		consumption_kwh_per_100km
	FROM vehicles
	WHERE vehicle_id = ?;
	`

	var v domain.Vehicle
	err := s.DB.QueryRowContext(ctx, query, id).
		Scan(&v.ID, &v.Name, &v.BatteryCapacityKwh, &v.RangeKm, &v.ConsumptionKwhPer100km)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Vehicle{}, fmt.Errorf("get vehicle %q: %w", id, ports.ErrVehicleNotFound)
	}
	if err != nil {
		return domain.Vehicle{}, fmt.Errorf("get vehicle %q: query vehicles table: %w", id, err)
	}

	return v, nil
}
