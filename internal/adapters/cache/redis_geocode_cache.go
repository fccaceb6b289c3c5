package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"ev-trip-service/internal/domain"
)

const geocodeKeyPrefix = "geocode:"

// RedisGeocodeCache is a Redis-backed cache mapping addresses to
// coordinates. Entries expire after the configured TTL so stale
// geocoding results eventually refresh.
type RedisGeocodeCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisGeocodeCache(client *redis.Client, ttl time.Duration) *RedisGeocodeCache {
	return &RedisGeocodeCache{Client: client, TTL: ttl}
}

// Get fetches the cached coordinate for one address.
func (r *RedisGeocodeCache) Get(ctx context.Context, address string) (domain.Coordinate, bool, error) {
	if r.Client == nil {
		return domain.Coordinate{}, false, errors.New("geocode cache: redis client is nil")
	}

	address = strings.TrimSpace(address)
	if address == "" {
		return domain.Coordinate{}, false, errors.New("get geocode cache: address must be non-empty")
	}

	val, err := r.Client.Get(ctx, geocodeKeyPrefix+address).Result()
	if errors.Is(err, redis.Nil) {
		return domain.Coordinate{}, false, nil
	}
	if err != nil {
		return domain.Coordinate{}, false, fmt.Errorf("get geocode cache: redis get: %w", err)
	}

	coord, err := parseCoordValue(val)
	if err != nil {
		return domain.Coordinate{}, false, fmt.Errorf("get geocode cache: %w", err)
	}

	return coord, true, nil
}

// Put stores one address -> coordinate mapping with the cache TTL.
func (r *RedisGeocodeCache) Put(ctx context.Context, address string, coord domain.Coordinate) error {
	if r.Client == nil {
		return errors.New("geocode cache: redis client is nil")
	}

	address = strings.TrimSpace(address)
	if address == "" {
		return errors.New("insert geocode cache: empty address key")
	}

	val := formatCoordValue(coord)
	if err := r.Client.Set(ctx, geocodeKeyPrefix+address, val, r.TTL).Err(); err != nil {
		return fmt.Errorf("insert geocode cache coord=%q: redis set: %w", address, err)
	}

	return nil
}

func formatCoordValue(c domain.Coordinate) string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lon, 'f', -1, 64)
}

func parseCoordValue(val string) (domain.Coordinate, error) {
	lat, lon, ok := strings.Cut(val, ",")
	if !ok {
		return domain.Coordinate{}, fmt.Errorf("malformed cached value %q", val)
	}

	latF, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("malformed cached latitude %q", lat)
	}
	lonF, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("malformed cached longitude %q", lon)
	}

	return domain.Coordinate{Lat: latF, Lon: lonF}, nil
}
