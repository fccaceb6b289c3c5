package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createStationsQuery := `
	CREATE TABLE IF NOT EXISTS stations (
		station_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		lat REAL NOT NULL,
		lon REAL NOT NULL,
		available INTEGER NOT NULL,
		total INTEGER NOT NULL,
		fast_charger INTEGER NOT NULL,
		cost_per_unit REAL NOT NULL
	);
	`

	createFerryRoutesQuery := `
	CREATE TABLE IF NOT EXISTS ferry_routes (
		name TEXT PRIMARY KEY,
		from_port TEXT NOT NULL,
		to_port TEXT NOT NULL,
		from_lat REAL NOT NULL,
		from_lon REAL NOT NULL,
		to_lat REAL NOT NULL,
		to_lon REAL NOT NULL,
		duration_minutes INTEGER NOT NULL
	);
	`

	createFerryDeparturesQuery := `
	CREATE TABLE IF NOT EXISTS ferry_departures (
		route_name TEXT NOT NULL,
		depart_time TEXT NOT NULL,
		PRIMARY KEY (route_name, depart_time)
	);
	`

	createVehiclesQuery := `
	CREATE TABLE IF NOT EXISTS vehicles (
		vehicle_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		battery_capacity_kwh REAL NOT NULL,
		range_km REAL NOT NULL,
		consumption_kwh_per_100km REAL NOT NULL
	);
	`

	createGeocodeCacheQuery := `
	CREATE TABLE IF NOT EXISTS geocode_cache (
		address TEXT PRIMARY KEY,
		lat REAL NOT NULL,
		lon REAL NOT NULL
	);
	`

	statements := []string{
		createStationsQuery,
		createFerryRoutesQuery,
		createFerryDeparturesQuery,
		createVehiclesQuery,
		createGeocodeCacheQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Populate the SQLite catalogs from the JSON seed files in seedDir
// (stations.json, ferries.json, vehicles.json).
func SeedFromJSON(db *sql.DB, seedDir string) error {
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

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed from json: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stationStmt, err := tx.Prepare(`
	INSERT OR REPLACE INTO stations (
		station_id, name, lat, lon, available, total, fast_charger, cost_per_unit
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("seed stations: prepare insert: %w", err)
	}
	defer stationStmt.Close()

	for _, s := range stations {
		fast := 0
		if s.FastCharger {
			fast = 1
		}
		if _, err := stationStmt.Exec(s.ID, s.Name, s.Lat, s.Lon, s.Available, s.Total, fast, s.CostPerUnit); err != nil {
			return fmt.Errorf("seed stations: insert station_id=%q: %w", s.ID, err)
		}
	}

	routeStmt, err := tx.Prepare(`
	INSERT OR REPLACE INTO ferry_routes (
		name, from_port, to_port, from_lat, from_lon, to_lat, to_lon, duration_minutes
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("seed ferries: prepare route insert: %w", err)
	}
	defer routeStmt.Close()

	departureStmt, err := tx.Prepare(`
	INSERT OR REPLACE INTO ferry_departures (route_name, depart_time)
	VALUES (?, ?);
	`)
	if err != nil {
		return fmt.Errorf("seed ferries: prepare departure insert: %w", err)
	}
	defer departureStmt.Close()

	for _, f := range ferries {
		if _, err := routeStmt.Exec(f.Name, f.FromPort, f.ToPort, f.FromLat, f.FromLon, f.ToLat, f.ToLon, f.DurationMinutes); err != nil {
			return fmt.Errorf("seed ferries: insert route=%q: %w", f.Name, err)
		}
		for _, dt := range f.ScheduledTimes {
			if _, err := departureStmt.Exec(f.Name, dt); err != nil {
				return fmt.Errorf("seed ferries: insert departure %s %s: %w", f.Name, dt, err)
			}
		}
	}

	vehicleStmt, err := tx.Prepare(`
	INSERT OR REPLACE INTO vehicles (
		vehicle_id, name, battery_capacity_kwh, range_km, consumption_kwh_per_100km
	)
	VALUES (?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("seed vehicles: prepare insert: %w", err)
	}
	defer vehicleStmt.Close()

	for _, v := range vehicles {
		if _, err := vehicleStmt.Exec(v.ID, v.Name, v.BatteryCapacityKwh, v.RangeKm, v.ConsumptionKwhPer100km); err != nil {
			return fmt.Errorf("seed vehicles: insert vehicle_id=%q: %w", v.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed from json: commit tx: %w", err)
	}

	return nil
}
