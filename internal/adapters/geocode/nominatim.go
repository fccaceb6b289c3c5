package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"ev-trip-service/internal/domain"
	"ev-trip-service/internal/platform/obs"
	"ev-trip-service/internal/ports"
)

// NominatimGeocoder implements the Geocoder port against a Nominatim
// instance (/search).
//
// It coordinates:
//   - Address normalization
//   - An optional persistent geocode cache
//   - External API calls with retry/backoff
//
// The geocoder is safe for concurrent use.
type NominatimGeocoder struct {
	session   *http.Client
	baseURL   string
	userAgent string
	cache     ports.GeocodeCache
}

func NewNominatimGeocoder(baseURL, userAgent string, timeout time.Duration, cache ports.GeocodeCache) (*NominatimGeocoder, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("nominatim base URL is empty")
	}
	if strings.TrimSpace(userAgent) == "" {
		return nil, errors.New("nominatim user agent is empty")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &NominatimGeocoder{
		session:   &http.Client{Timeout: timeout},
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		cache:     cache,
	}, nil
}

// normalize ensures consistent cache keys by collapsing whitespace.
func (g *NominatimGeocoder) normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Geocode resolves one address to a coordinate, consulting the cache
// before issuing an external call. A single attempt from the caller's
// point of view; transient HTTP failures are retried internally.
func (g *NominatimGeocoder) Geocode(ctx context.Context, address string) (_ domain.Coordinate, err error) {
	defer obs.Time(ctx, "nominatim.Geocode")(&err)

	norm := g.normalize(address)
	if norm == "" {
		return domain.Coordinate{}, errors.New("geocode: address must be non-empty")
	}

	if g.cache != nil {
		coord, ok, err := g.cache.Get(ctx, norm)
		if err != nil {
			return domain.Coordinate{}, fmt.Errorf("geocode cache read %q: %w", norm, err)
		}
		if ok {
			return coord, nil
		}
	}

	coord, err := g.fetch(ctx, norm)
	if err != nil {
		return domain.Coordinate{}, err
	}

	if g.cache != nil {
		if err := g.cache.Put(ctx, norm, coord); err != nil {
			log.Printf("geocode cache write failed: %v", err)
		}
	}

	return coord, nil
}

type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

func (g *NominatimGeocoder) fetch(ctx context.Context, address string) (domain.Coordinate, error) {
	endpoint := g.baseURL + "/search"

	resp, err := g.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := g.newRequest(ctx, endpoint)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("q", address)
		q.Set("format", "jsonv2")
		q.Set("limit", "1")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("geocode %q: execute request: %w", address, err)
	}
	defer resp.Body.Close()

	var decoded []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Coordinate{}, fmt.Errorf("geocode %q: decode response: %w", address, err)
	}

	if len(decoded) == 0 {
		return domain.Coordinate{}, fmt.Errorf("geocode %q: %w", address, ports.ErrNoResults)
	}

	lat, err := strconv.ParseFloat(decoded[0].Lat, 64)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("geocode %q: invalid latitude %q", address, decoded[0].Lat)
	}
	lon, err := strconv.ParseFloat(decoded[0].Lon, 64)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("geocode %q: invalid longitude %q", address, decoded[0].Lon)
	}

	return domain.Coordinate{Lat: lat, Lon: lon}, nil
}
