package engine

import (
	"math"
	"testing"
	"time"

	"ev-trip-service/internal/domain"
)

func TestRecommendDepartureAlesundBergenShortest(t *testing.T) {
	arrival := time.Date(2026, 6, 15, 18, 0, 0, 0, time.UTC)
	req := domain.TripRequest{
		From:              "Ålesund",
		To:                "Bergen",
		BatteryPercentage: 80,
		RouteType:         domain.RouteShortest,
		DesiredArrival:    &arrival,
	}

	est := RecommendDeparture(req, testVehicle)

	// Corridor override 540 min / 505 km, shortest multipliers.
	if est.TravelMinutes != 594 {
		t.Fatalf("travel minutes = %d, want 594", est.TravelMinutes)
	}
	if math.Abs(est.DistanceKm-479.75) > 1e-9 {
		t.Fatalf("distance = %v, want 479.75", est.DistanceKm)
	}
	if !est.ChargingRequired {
		t.Fatal("480 km at 80% of a 400 km vehicle must require charging")
	}
	if est.ChargingStops != 1 {
		t.Fatalf("charging stops = %d, want 1", est.ChargingStops)
	}
	if est.ChargingMinutes != 40 {
		t.Fatalf("charging minutes = %d, want 40", est.ChargingMinutes)
	}
	if est.ArrivalBatteryPercent != 5 {
		t.Fatalf("arrival battery = %v, want floor of 5", est.ArrivalBatteryPercent)
	}

	// Long trip: 60-minute ferry and traffic buffers, scaled 1.10 for
	// shortest, plus the constant 20-minute weather buffer.
	// 594 + 66 + 66 + 40 + 20 = 786.
	if est.RecommendedDeparture == nil {
		t.Fatal("expected a recommended departure")
	}
	want := arrival.Add(-786 * time.Minute)
	if !est.RecommendedDeparture.Equal(want) {
		t.Fatalf("recommended departure = %v, want %v", est.RecommendedDeparture, want)
	}
}

func TestRecommendDepartureRoundTripExact(t *testing.T) {
	arrival := time.Date(2026, 2, 1, 9, 30, 0, 0, time.UTC)
	reqs := []domain.TripRequest{
		{From: "Ålesund", To: "Bergen", BatteryPercentage: 80, RouteType: domain.RouteShortest, DesiredArrival: &arrival},
		{From: "Oslo", To: "Trondheim", BatteryPercentage: 100, RouteType: domain.RouteFastest, DesiredArrival: &arrival},
		{From: "A", To: "B", BatteryPercentage: 55, RouteType: domain.RouteEco, DesiredArrival: &arrival},
		{From: "Bergen", To: "Stavanger", BatteryPercentage: 30, TrailerWeightKg: 800, DesiredArrival: &arrival},
	}

	for _, req := range reqs {
		est := RecommendDeparture(req, testVehicle)
		if est.RecommendedDeparture == nil {
			t.Fatalf("%s -> %s: missing recommended departure", req.From, req.To)
		}

		total := TotalMinutes(est, req.RouteType)
		back := est.RecommendedDeparture.Add(time.Duration(total) * time.Minute)
		if !back.Equal(arrival) {
			t.Errorf("%s -> %s: departure + %d min = %v, want %v",
				req.From, req.To, total, back, arrival)
		}
	}
}

func TestRecommendDepartureNoArrivalTarget(t *testing.T) {
	est := RecommendDeparture(domain.TripRequest{
		From: "Ålesund", To: "Molde", BatteryPercentage: 90,
	}, testVehicle)

	if est.RecommendedDeparture != nil {
		t.Fatalf("no desired arrival set, departure should be nil, got %v", est.RecommendedDeparture)
	}
	if est.TravelMinutes != 90 {
		t.Fatalf("travel minutes = %d, want 90 (Ålesund-Molde corridor)", est.TravelMinutes)
	}
	if est.ChargingRequired {
		t.Fatal("80 km at 90% should not require charging")
	}
}

func TestRecommendDepartureViaLegsAreSummed(t *testing.T) {
	est := RecommendDeparture(domain.TripRequest{
		From: "Ålesund", Via: "Molde", To: "Somewhere up north",
		BatteryPercentage: 100,
	}, testVehicle)

	// Ålesund-Molde corridor (90 min / 80 km) plus the generic
	// fallback for the unknown second leg (180 min / 200 km).
	if est.TravelMinutes != 270 {
		t.Fatalf("travel minutes = %d, want 270", est.TravelMinutes)
	}
	if math.Abs(est.DistanceKm-280) > 1e-9 {
		t.Fatalf("distance = %v, want 280", est.DistanceKm)
	}
}

func TestRecommendDepartureShortTripBuffers(t *testing.T) {
	arrival := time.Date(2026, 2, 1, 9, 30, 0, 0, time.UTC)
	est := RecommendDeparture(domain.TripRequest{
		From: "Ålesund", To: "Molde",
		BatteryPercentage: 90,
		DesiredArrival:    &arrival,
	}, testVehicle)

	// 80 km: short-trip buffers (30 + 30), no charging, weather 20.
	want := arrival.Add(-(90 + 30 + 30 + 20) * time.Minute)
	if !est.RecommendedDeparture.Equal(want) {
		t.Fatalf("recommended departure = %v, want %v", est.RecommendedDeparture, want)
	}
}

func TestRecommendDepartureNegativeTrailerClamped(t *testing.T) {
	clean := RecommendDeparture(domain.TripRequest{
		From: "Ålesund", To: "Bergen", BatteryPercentage: 80,
	}, testVehicle)
	negative := RecommendDeparture(domain.TripRequest{
		From: "Ålesund", To: "Bergen", BatteryPercentage: 80, TrailerWeightKg: -300,
	}, testVehicle)

	if clean.ChargingMinutes != negative.ChargingMinutes || clean.ChargingStops != negative.ChargingStops {
		t.Fatalf("negative trailer weight must behave like no trailer: %+v vs %+v", clean, negative)
	}
}
