package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"ev-trip-service/internal/domain"
)

// SQLite backed cache mapping address strings to geographic
// coordinates. Address keys are expected to be consistent (e.g.,
// normalized) by the caller.
type SqliteGeocodeCache struct {
	DB *sql.DB
}

func NewSqliteGeocodeCache(db *sql.DB) *SqliteGeocodeCache {
	return &SqliteGeocodeCache{DB: db}
}

// Get fetches the cached coordinate for one address.
func (s *SqliteGeocodeCache) Get(ctx context.Context, address string) (domain.Coordinate, bool, error) {
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
	WHERE address = ?;
	`

	var lat, lon float64
	err := s.DB.QueryRowContext(ctx, q, address).Scan(&lat, &lon)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Coordinate{}, false, nil
	}
	if err != nil {
		return domain.Coordinate{}, false, fmt.Errorf("get geocode cache: query geocode_cache table: %w", err)
	}

	return domain.Coordinate{Lat: lat, Lon: lon}, true, nil
}

// Put stores one address -> coordinate mapping.
func (s *SqliteGeocodeCache) Put(ctx context.Context, address string, coord domain.Coordinate) error {
	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	address = strings.TrimSpace(address)
	if address == "" {
		return errors.New("insert geocode cache: empty address key")
	}

	q := `
	INSERT OR REPLACE INTO geocode_cache (address, lat, lon)
	VALUES (?, ?, ?);
	`
	if _, err := s.DB.ExecContext(ctx, q, address, coord.Lat, coord.Lon); err != nil {
		return fmt.Errorf("insert geocode cache coord=%q: %w", address, err)
	}

	return nil
}
