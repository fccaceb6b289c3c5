package repositories

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// JSON seed shapes for the static reference catalogs. Seed files live
// under data/seeds and are loaded at startup (SQLite) or by the dbtool
// (Postgres).

type StationSeed struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Available   int     `json:"available"`
	Total       int     `json:"total"`
	FastCharger bool    `json:"fast_charger"`
	CostPerUnit float64 `json:"cost_per_unit"`
}

type FerrySeed struct {
	Name            string   `json:"name"`
	FromPort        string   `json:"from_port"`
	ToPort          string   `json:"to_port"`
	FromLat         float64  `json:"from_lat"`
	FromLon         float64  `json:"from_lon"`
	ToLat           float64  `json:"to_lat"`
	ToLon           float64  `json:"to_lon"`
	DurationMinutes int      `json:"duration_minutes"`
	ScheduledTimes  []string `json:"scheduled_times"`
}

type VehicleSeed struct {
	ID                     string  `json:"id"`
	Name                   string  `json:"name"`
	BatteryCapacityKwh     float64 `json:"battery_capacity_kwh"`
	RangeKm                float64 `json:"range_km"`
	ConsumptionKwhPer100km float64 `json:"consumption_kwh_per_100km"`
}

func readStationSeeds(jsonPath string) ([]StationSeed, error) {
	var data []StationSeed
	if err := readSeedFile(jsonPath, &data); err != nil {
		return nil, fmt.Errorf("seed stations: %w", err)
	}

	for i, s := range data {
		if strings.TrimSpace(s.ID) == "" {
			return nil, fmt.Errorf("seed stations: item at index %d: id cannot be empty", i+1)
		}
		if s.Available < 0 || s.Total < 0 || s.Available > s.Total {
			return nil, fmt.Errorf("seed stations: station %q: invalid availability %d/%d", s.ID, s.Available, s.Total)
		}
	}

	return data, nil
}

func readFerrySeeds(jsonPath string) ([]FerrySeed, error) {
	var data []FerrySeed
	if err := readSeedFile(jsonPath, &data); err != nil {
		return nil, fmt.Errorf("seed ferries: %w", err)
	}

	for i, f := range data {
		if strings.TrimSpace(f.Name) == "" {
			return nil, fmt.Errorf("seed ferries: item at index %d: name cannot be empty", i+1)
		}
		if len(f.ScheduledTimes) == 0 {
			return nil, fmt.Errorf("seed ferries: route %q has no scheduled times", f.Name)
		}
	}

	return data, nil
}

func readVehicleSeeds(jsonPath string) ([]VehicleSeed, error) {
	var data []VehicleSeed
	if err := readSeedFile(jsonPath, &data); err != nil {
		return nil, fmt.Errorf("seed vehicles: %w", err)
	}

	for i, v := range data {
		if strings.TrimSpace(v.ID) == "" {
			return nil, fmt.Errorf("seed vehicles: item at index %d: id cannot be empty", i+1)
		}
		if v.RangeKm <= 0 {
			return nil, fmt.Errorf("seed vehicles: vehicle %q: range must be positive", v.ID)
		}
	}

	return data, nil
}

func readSeedFile(jsonPath string, into any) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("read %q: %w", jsonPath, err)
	}

	if err := json.Unmarshal(bytes, into); err != nil {
		return fmt.Errorf("parse %q: %w", jsonPath, err)
	}

	return nil
}
