package geo

import (
	"testing"

	"ev-trip-service/internal/domain"
)

func TestDistanceKmSamePoint(t *testing.T) {
	p := domain.Coordinate{Lat: 62.4722, Lon: 6.1549}
	if got := DistanceKm(p, p); got != 0 {
		t.Fatalf("DistanceKm(p, p) = %v, want 0", got)
	}
}

func TestDistanceKmSymmetric(t *testing.T) {
	pairs := []struct {
		a, b domain.Coordinate
	}{
		{domain.Coordinate{Lat: 62.4722, Lon: 6.1549}, domain.Coordinate{Lat: 60.3913, Lon: 5.3221}},
		{domain.Coordinate{Lat: 0, Lon: 0}, domain.Coordinate{Lat: -45, Lon: 170}},
		{domain.Coordinate{Lat: 89.9, Lon: -120}, domain.Coordinate{Lat: -89.9, Lon: 60}},
	}

	for _, p := range pairs {
		ab := DistanceKm(p.a, p.b)
		ba := DistanceKm(p.b, p.a)
		if ab != ba {
			t.Errorf("DistanceKm not symmetric: %v vs %v for %+v", ab, ba, p)
		}
	}
}

func TestDistanceKmKnownDistance(t *testing.T) {
	// Ålesund to Bergen, roughly 230 km as the crow flies.
	alesund := domain.Coordinate{Lat: 62.4722, Lon: 6.1549}
	bergen := domain.Coordinate{Lat: 60.3913, Lon: 5.3221}

	got := DistanceKm(alesund, bergen)
	if got < 220 || got > 245 {
		t.Fatalf("DistanceKm(Ålesund, Bergen) = %.1f km, want ~230 km", got)
	}
}
