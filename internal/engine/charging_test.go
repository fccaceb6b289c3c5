package engine

import (
	"context"
	"errors"
	"testing"

	"ev-trip-service/internal/adapters/geocode"
	"ev-trip-service/internal/domain"
)

func plannerGeocoder() *geocode.MockGeocoder {
	return geocode.NewMockGeocoder([]geocode.MockEntry{
		{Address: "Ålesund", Lat: 62.4722, Lon: 6.1549},
		{Address: "Bergen", Lat: 60.3913, Lon: 5.3221},
		{Address: "Moa", Lat: 62.4494, Lon: 6.3644},
	})
}

func plannerStations() []domain.ChargingStation {
	return []domain.ChargingStation{
		{
			ID: "st-forde", Name: "Førde Ladepark",
			Coordinate: domain.Coordinate{Lat: 61.4514, Lon: 5.8569},
			Available:  4, Total: 8, FastCharger: true, CostPerUnit: 5.9,
		},
		{
			ID: "st-volda", Name: "Volda Hurtiglading",
			Coordinate: domain.Coordinate{Lat: 62.1460, Lon: 6.0711},
			Available:  2, Total: 4, FastCharger: true, CostPerUnit: 5.5,
		},
		{
			ID: "st-orsta-full", Name: "Ørsta Sentrum",
			Coordinate: domain.Coordinate{Lat: 62.1999, Lon: 6.1328},
			Available:  0, Total: 6, FastCharger: false, CostPerUnit: 4.2,
		},
	}
}

func TestFindMandatoryStopTripWithinReach(t *testing.T) {
	// Ålesund to Moa is a short hop; battery 50% on a 400 km vehicle
	// covers it many times over.
	stop, err := FindMandatoryStop(
		context.Background(),
		"Ålesund", "Moa",
		testVehicle, 50,
		plannerStations(), plannerGeocoder(),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stop != nil {
		t.Fatalf("expected no mandatory stop, got %+v", stop)
	}
}

func TestFindMandatoryStopPicksNearestAvailable(t *testing.T) {
	// Battery 50%: usable before critical = 170 - 34 = 136 km. The
	// Ålesund-Bergen crow-line (~230 km) exceeds that, so a stop is
	// mandatory. Ørsta is nearest but has no free chargers; Volda is
	// the nearest available one within reach.
	stop, err := FindMandatoryStop(
		context.Background(),
		"Ålesund", "Bergen",
		testVehicle, 50,
		plannerStations(), plannerGeocoder(),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stop == nil {
		t.Fatal("expected a mandatory stop")
	}
	if stop.Station.ID != "st-volda" {
		t.Fatalf("station = %s, want st-volda", stop.Station.ID)
	}
	if stop.DistanceFromOriginKm <= 0 || stop.DistanceFromOriginKm > 136 {
		t.Fatalf("distance to station = %v, want within usable range", stop.DistanceFromOriginKm)
	}
	if stop.ArrivalBatteryPercent < 5 || stop.ArrivalBatteryPercent >= 50 {
		t.Fatalf("arrival battery = %v, want in [5, 50)", stop.ArrivalBatteryPercent)
	}
}

func TestFindMandatoryStopNoAvailableStation(t *testing.T) {
	stations := plannerStations()
	for i := range stations {
		stations[i].Available = 0
	}

	_, err := FindMandatoryStop(
		context.Background(),
		"Ålesund", "Bergen",
		testVehicle, 50,
		stations, plannerGeocoder(),
	)
	if !errors.Is(err, ErrNoReachableStation) {
		t.Fatalf("err = %v, want ErrNoReachableStation", err)
	}
}

func TestFindMandatoryStopGeocodingFailure(t *testing.T) {
	_, err := FindMandatoryStop(
		context.Background(),
		"Atlantis", "Bergen",
		testVehicle, 50,
		plannerStations(), plannerGeocoder(),
	)
	if !errors.Is(err, ErrGeocodingFailed) {
		t.Fatalf("err = %v, want ErrGeocodingFailed", err)
	}

	_, err = FindMandatoryStop(
		context.Background(),
		"Ålesund", "Atlantis",
		testVehicle, 50,
		plannerStations(), plannerGeocoder(),
	)
	if !errors.Is(err, ErrGeocodingFailed) {
		t.Fatalf("err = %v, want ErrGeocodingFailed for destination", err)
	}
}

func TestFindMandatoryStopArrivalBatteryFloor(t *testing.T) {
	// Battery 12%: usable before critical = 40.8 - 34 = 6.8 km, so even
	// a modest trip needs a stop, and none is within reach.
	_, err := FindMandatoryStop(
		context.Background(),
		"Ålesund", "Bergen",
		testVehicle, 12,
		plannerStations(), plannerGeocoder(),
	)
	if !errors.Is(err, ErrNoReachableStation) {
		t.Fatalf("err = %v, want ErrNoReachableStation on a nearly empty battery", err)
	}
}
