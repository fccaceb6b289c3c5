package engine

import (
	"context"
	"errors"
	"fmt"

	"ev-trip-service/internal/domain"
	"ev-trip-service/internal/geo"
	"ev-trip-service/internal/ports"
)

// ErrGeocodingFailed reports that an endpoint address could not be
// resolved to a coordinate. Fatal to mandatory-stop planning: unlike
// duration estimation, it cannot proceed on place names alone.
var ErrGeocodingFailed = errors.New("geocoding failed")

// ErrNoReachableStation reports that the battery would deplete before
// any available station. The user must charge before departing.
var ErrNoReachableStation = errors.New("no reachable charging station")

// MandatoryStop is the first charging stop a trip cannot avoid.
type MandatoryStop struct {
	Station               domain.ChargingStation
	DistanceFromOriginKm  float64
	ArrivalBatteryPercent float64
}

// FindMandatoryStop finds the single nearest charging station that must
// be visited before the battery would cross the 10% critical floor.
//
// This is a greedy nearest-within-reach selection: it answers "where
// must I charge at least once", not "what is the cheapest charging
// itinerary". A nil result with a nil error means the whole trip fits
// within the usable range and no stop is mandatory.
//
// The range model here is deliberately conservative: standard seasonal
// derating only, no route-type or trailer adjustment.
func FindMandatoryStop(
	ctx context.Context,
	from string,
	to string,
	vehicle domain.Vehicle,
	batteryPercentage int,
	stations []domain.ChargingStation,
	geocoder ports.Geocoder,
) (*MandatoryStop, error) {
	origin, err := geocoder.Geocode(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("find mandatory stop: origin %q: %w: %v", from, ErrGeocodingFailed, err)
	}

	destination, err := geocoder.Geocode(ctx, to)
	if err != nil {
		return nil, fmt.Errorf("find mandatory stop: destination %q: %w: %v", to, ErrGeocodingFailed, err)
	}

	pct := clampPercent(batteryPercentage)
	effectiveRange := vehicle.RangeKm * seasonalDerating
	currentRange := effectiveRange * float64(pct) / 100.0

	// Distance the vehicle can cover before the battery would hit the
	// critical floor.
	usableBeforeCritical := currentRange - effectiveRange*criticalFloorFraction

	if geo.DistanceKm(origin, destination) <= usableBeforeCritical {
		return nil, nil
	}

	var best *domain.ChargingStation
	bestDist := 0.0
	for i := range stations {
		s := stations[i]
		if s.Available <= 0 {
			continue
		}

		d := geo.DistanceKm(origin, s.Coordinate)
		if d > usableBeforeCritical {
			continue
		}
		if best == nil || d < bestDist {
			best = &s
			bestDist = d
		}
	}

	if best == nil {
		return nil, fmt.Errorf("find mandatory stop: %q -> %q: %w", from, to, ErrNoReachableStation)
	}

	arrival := float64(pct) - (bestDist/effectiveRange)*100.0
	if arrival < 5 {
		arrival = 5
	}

	return &MandatoryStop{
		Station:               *best,
		DistanceFromOriginKm:  bestDist,
		ArrivalBatteryPercent: arrival,
	}, nil
}
