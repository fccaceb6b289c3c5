package repositories

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"ev-trip-service/internal/ports"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// In-memory SQLite is per-connection; keep the pool at one.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, InitSchema(db))
	return db
}

func writeSeedDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	files := map[string]string{
		"stations.json": `[
			{"id": "st-volda", "name": "Volda Hurtiglading", "lat": 62.146, "lon": 6.0711,
			 "available": 3, "total": 6, "fast_charger": true, "cost_per_unit": 5.5},
			{"id": "st-skei", "name": "Skei i Jølster Lading", "lat": 61.572, "lon": 6.487,
			 "available": 1, "total": 4, "fast_charger": false, "cost_per_unit": 4.2}
		]`,
		"ferries.json": `[
			{"name": "Magerholm-Sykkylven", "from_port": "Magerholm", "to_port": "Sykkylven",
			 "from_lat": 62.4179, "from_lon": 6.4585, "to_lat": 62.406, "to_lon": 6.525,
			 "duration_minutes": 15, "scheduled_times": ["06:00", "07:20", "18:00"]}
		]`,
		"vehicles.json": `[
			{"id": "ev-family", "name": "Family Estate 77", "battery_capacity_kwh": 77,
			 "range_km": 450, "consumption_kwh_per_100km": 17.0}
		]`,
	}

	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return dir
}

func TestSeedAndListStations(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, SeedFromJSON(db, writeSeedDir(t)))

	repo := NewSqliteStationRepository(db)
	stations, err := repo.ListStations(context.Background())
	require.NoError(t, err)
	require.Len(t, stations, 2)

	// Ordered by station_id.
	assert.Equal(t, "st-skei", stations[0].ID)
	assert.False(t, stations[0].FastCharger)
	assert.Equal(t, "st-volda", stations[1].ID)
	assert.True(t, stations[1].FastCharger)
	assert.Equal(t, 62.146, stations[1].Coordinate.Lat)
	assert.Equal(t, 3, stations[1].Available)
}

func TestSeedAndListFerryRoutes(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, SeedFromJSON(db, writeSeedDir(t)))

	repo := NewSqliteFerryRepository(db)
	routes, err := repo.ListFerryRoutes(context.Background())
	require.NoError(t, err)
	require.Len(t, routes, 1)

	r := routes[0]
	assert.Equal(t, "Magerholm-Sykkylven", r.Name)
	assert.Equal(t, "Magerholm", r.FromPort)
	assert.Equal(t, 15, r.DurationMinutes)
	assert.Equal(t, []string{"06:00", "07:20", "18:00"}, r.ScheduledTimes)
}

func TestSeedAndGetVehicle(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, SeedFromJSON(db, writeSeedDir(t)))

	repo := NewSqliteVehicleRepository(db)

	vehicles, err := repo.ListVehicles(context.Background())
	require.NoError(t, err)
	require.Len(t, vehicles, 1)

	v, err := repo.GetVehicle(context.Background(), "ev-family")
	require.NoError(t, err)
	assert.Equal(t, "Family Estate 77", v.Name)
	assert.Equal(t, 450.0, v.RangeKm)

	_, err = repo.GetVehicle(context.Background(), "ev-ghost")
	assert.ErrorIs(t, err, ports.ErrVehicleNotFound)
}

func TestSeedIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	dir := writeSeedDir(t)

	require.NoError(t, SeedFromJSON(db, dir))
	require.NoError(t, SeedFromJSON(db, dir))

	repo := NewSqliteStationRepository(db)
	stations, err := repo.ListStations(context.Background())
	require.NoError(t, err)
	assert.Len(t, stations, 2)
}

func TestSeedRejectsInvalidData(t *testing.T) {
	db := newTestDB(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stations.json"),
		[]byte(`[{"id": "st-bad", "name": "Bad", "lat": 0, "lon": 0, "available": 9, "total": 2}]`), 0o644))

	err := SeedFromJSON(db, dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid availability")
}
