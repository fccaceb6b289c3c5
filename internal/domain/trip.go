package domain

import "time"

// RouteType selects the routing preference a trip is planned for.
// Unknown values behave like the default (no adjustment).
type RouteType string

const (
	RouteFastest  RouteType = "fastest"
	RouteShortest RouteType = "shortest"
	RouteEco      RouteType = "eco"
)

// TripRequest carries the user input for one trip-planning invocation.
// It is ephemeral: created per request, never persisted by the engine.
// Battery percentage and trailer weight may be transiently out of range
// while a form is being edited; the engine clamps rather than rejects.
type TripRequest struct {
	From              string
	To                string
	Via               string
	TrailerWeightKg   float64
	BatteryPercentage int
	RouteType         RouteType
	DesiredArrival    *time.Time
}

// TripEstimate is the engine's answer for one trip request.
// MandatoryStation is filled only when station data and a geocoder
// were available to the caller; the pure estimate leaves it nil.
type TripEstimate struct {
	DistanceKm            float64
	TravelMinutes         int
	ChargingRequired      bool
	ChargingStops         int
	ChargingMinutes       int
	MandatoryStation      *ChargingStation
	ArrivalBatteryPercent float64
	RecommendedDeparture  *time.Time
}
