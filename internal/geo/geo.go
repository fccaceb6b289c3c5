// Package geo provides great-circle math for the planning engine.
//
// Distances use the Haversine formula on WGS-84 coordinates. These are
// straight-line approximations: the estimator layers above apply their
// own corrections for roads, ferries and mountain passes.
package geo

import (
	"math"

	"ev-trip-service/internal/domain"
)

// EarthRadiusKm is the mean radius of Earth in kilometers.
const EarthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance between two points in
// kilometers. Symmetric in its arguments; zero for identical points.
func DistanceKm(a, b domain.Coordinate) float64 {
	dLat := degToRad(b.Lat - a.Lat)
	dLon := degToRad(b.Lon - a.Lon)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)

	h := sinLat*sinLat +
		math.Cos(degToRad(a.Lat))*math.Cos(degToRad(b.Lat))*sinLon*sinLon

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(h))
}

func degToRad(deg float64) float64 {
	return deg * (math.Pi / 180.0)
}
