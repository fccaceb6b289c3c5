package domain

// ChargingStation is a read-only snapshot of one charging location.
// Availability reflects the data layer at snapshot time; the engine
// never holds a live reference to station state.
type ChargingStation struct {
	ID          string
	Name        string
	Coordinate  Coordinate
	Available   int
	Total       int
	FastCharger bool
	CostPerUnit float64
}
