package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"ev-trip-service/internal/domain"
	"ev-trip-service/internal/platform/obs"
)

// SQLGeocodeCache is a Postgres-backed cache mapping addresses to
// coordinates.
type SQLGeocodeCache struct {
	DB *sql.DB
}

func NewSQLGeocodeCache(db *sql.DB) *SQLGeocodeCache {
	return &SQLGeocodeCache{DB: db}
}

// Get fetches the cached coordinate for one address.
func (s *SQLGeocodeCache) Get(ctx context.Context, address string) (_ domain.Coordinate, _ bool, err error) {
	defer obs.Time(ctx, "geocode.cache.Get")(&err)

	if s.DB == nil {
		return domain.Coordinate{}, false, errors.New("geocode cache: db is nil")
	}

	address = strings.TrimSpace(address)
	if address == "" {
		return domain.Coordinate{}, false, errors.New("get geocode cache: address must be non-empty")
	}

	q := `
	SELECT lat, lon
	FROM geocode_cache
	WHERE address = $1;
	`

	var lat, lon float64
	err = s.DB.QueryRowContext(ctx, q, address).Scan(&lat, &lon)
	if errors.Is(err, sql.ErrNoRows) {
		err = nil
		return domain.Coordinate{}, false, nil
	}
	if err != nil {
		return domain.Coordinate{}, false, fmt.Errorf("get geocode cache: query geocode_cache table: %w", err)
	}

	return domain.Coordinate{Lat: lat, Lon: lon}, true, nil
}

// Put stores or refreshes one address -> coordinate mapping.
func (s *SQLGeocodeCache) Put(ctx context.Context, address string, coord domain.Coordinate) error {
	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	address = strings.TrimSpace(address)
	if address == "" {
		return errors.New("insert geocode cache: empty address key")
	}

	q := `
	INSERT INTO geocode_cache (address, lat, lon)
	VALUES ($1, $2, $3)
	ON CONFLICT (address) DO UPDATE
	SET lat = EXCLUDED.lat,
		lon = EXCLUDED.lon;
	`
	if _, err := s.DB.ExecContext(ctx, q, address, coord.Lat, coord.Lon); err != nil {
		return fmt.Errorf("insert geocode cache coord=%q: %w", address, err)
	}

	return nil
}
