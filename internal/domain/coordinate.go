package domain

// Immutable geographic coordinate (latitude, longitude, WGS-84).
// Valid latitudes lie in [-90, 90] and longitudes in [-180, 180];
// constructors of reference data are responsible for validity.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}
