package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
)

// Initialize the Postgres database schema. Same catalogs as the
// SQLite variant; used by cmd/dbtool against a deployment database.
func InitSchemaPostgres(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	statements := []string{
		`
		CREATE TABLE IF NOT EXISTS stations (
			station_id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			lat DOUBLE PRECISION NOT NULL,
			lon DOUBLE PRECISION NOT NULL,
			available INTEGER NOT NULL,
			total INTEGER NOT NULL,
			fast_charger BOOLEAN NOT NULL,
			cost_per_unit DOUBLE PRECISION NOT NULL
		);
		`,
		`
		CREATE TABLE IF NOT EXISTS ferry_routes (
			name TEXT PRIMARY KEY,
			from_port TEXT NOT NULL,
			to_port TEXT NOT NULL,
			from_lat DOUBLE PRECISION NOT NULL,
			from_lon DOUBLE PRECISION NOT NULL,
			to_lat DOUBLE PRECISION NOT NULL,
			to_lon DOUBLE PRECISION NOT NULL,
			duration_minutes INTEGER NOT NULL
		);
		`,
		`
		CREATE TABLE IF NOT EXISTS ferry_departures (
			route_name TEXT NOT NULL,
			depart_time TEXT NOT NULL,
			PRIMARY KEY (route_name, depart_time)
		);
		`,
		`
		CREATE TABLE IF NOT EXISTS vehicles (
			vehicle_id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			battery_capacity_kwh DOUBLE PRECISION NOT NULL,
			range_km DOUBLE PRECISION NOT NULL,
			consumption_kwh_per_100km DOUBLE PRECISION NOT NULL
		);
		`,
		`
		CREATE TABLE IF NOT EXISTS geocode_cache (
			address TEXT PRIMARY KEY,
			lat DOUBLE PRECISION NOT NULL,
			lon DOUBLE PRECISION NOT NULL
		);
		`,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Populate the Postgres catalogs from the JSON seed files in seedDir.
func SeedPostgresFromJSON(ctx context.Context, db *sql.DB, seedDir string) error {
	if db == nil {
		return errors.New("seed from json: DB is nil")
	}

	stations, err := readStationSeeds(filepath.Join(seedDir, "stations.json"))
	if err != nil {
		return fmt.Errorf("seed from json: %w", err)
	}
	ferries, err := readFerrySeeds(filepath.Join(seedDir, "ferries.json"))
	if err != nil {
		return fmt.Errorf("seed from json: %w", err)
	}
	vehicles, err := readVehicleSeeds(filepath.Join(seedDir, "vehicles.json"))
	if err != nil {
		return fmt.Errorf("seed from json: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed from json: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stationStmt, err := tx.PrepareContext(ctx, `
	INSERT INTO stations (
		station_id, name, lat, lon, available, total, fast_charger, cost_per_unit
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (station_id) DO UPDATE
	SET name = EXCLUDED.name,
		lat = EXCLUDED.lat,
		lon = EXCLUDED.lon,
		available = EXCLUDED.available,
		total = EXCLUDED.total,
		fast_charger = EXCLUDED.fast_charger,
		cost_per_unit = EXCLUDED.cost_per_unit;
	`)
	if err != nil {
		return fmt.Errorf("seed stations: prepare insert: %w", err)
	}
	defer stationStmt.Close()

	for _, s := range stations {
		if _, err := stationStmt.ExecContext(ctx, s.ID, s.Name, s.Lat, s.Lon, s.Available, s.Total, s.FastCharger, s.CostPerUnit); err != nil {
			return fmt.Errorf("seed stations: insert station_id=%q: %w", s.ID, err)
		}
	}

	routeStmt, err := tx.PrepareContext(ctx, `
	INSERT INTO ferry_routes (
		name, from_port, to_port, from_lat, from_lon, to_lat, to_lon, duration_minutes
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (name) DO UPDATE
	SET from_port = EXCLUDED.from_port,
		to_port = EXCLUDED.to_port,
		from_lat = EXCLUDED.from_lat,
		from_lon = EXCLUDED.from_lon,
		to_lat = EXCLUDED.to_lat,
		to_lon = EXCLUDED.to_lon,
		duration_minutes = EXCLUDED.duration_minutes;
	`)
	if err != nil {
		return fmt.Errorf("seed ferries: prepare route insert: %w", err)
	}
	defer routeStmt.Close()

	departureStmt, err := tx.PrepareContext(ctx, `
	INSERT INTO ferry_departures (route_name, depart_time)
	VALUES ($1, $2)
	ON CONFLICT (route_name, depart_time) DO NOTHING;
	`)
	if err != nil {
		return fmt.Errorf("seed ferries: prepare departure insert: %w", err)
	}
	defer departureStmt.Close()

	for _, f := range ferries {
		if _, err := routeStmt.ExecContext(ctx, f.Name, f.FromPort, f.ToPort, f.FromLat, f.FromLon, f.ToLat, f.ToLon, f.DurationMinutes); err != nil {
			return fmt.Errorf("seed ferries: insert route=%q: %w", f.Name, err)
		}
		for _, dt := range f.ScheduledTimes {
			if _, err := departureStmt.ExecContext(ctx, f.Name, dt); err != nil {
				return fmt.Errorf("seed ferries: insert departure %s %s: %w", f.Name, dt, err)
			}
		}
	}

	vehicleStmt, err := tx.PrepareContext(ctx, `
	INSERT INTO vehicles (
		vehicle_id, name, battery_capacity_kwh, range_km, consumption_kwh_per_100km
	)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (vehicle_id) DO UPDATE
	SET name = EXCLUDED.name,
		battery_capacity_kwh = EXCLUDED.battery_capacity_kwh,
		range_km = EXCLUDED.range_km,
		consumption_kwh_per_100km = EXCLUDED.consumption_kwh_per_100km;
	`)
	if err != nil {
		return fmt.Errorf("seed vehicles: prepare insert: %w", err)
	}
	defer vehicleStmt.Close()

	for _, v := range vehicles {
		if _, err := vehicleStmt.ExecContext(ctx, v.ID, v.Name, v.BatteryCapacityKwh, v.RangeKm, v.ConsumptionKwhPer100km); err != nil {
			return fmt.Errorf("seed vehicles: insert vehicle_id=%q: %w", v.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed from json: commit tx: %w", err)
	}

	return nil
}
