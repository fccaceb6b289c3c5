package domain

// Vehicle holds the battery and range characteristics of a catalog entry.
// Vehicles are immutable reference data looked up per trip request and
// never mutated by the planning engine.
type Vehicle struct {
	ID                     string
	Name                   string
	BatteryCapacityKwh     float64
	RangeKm                float64
	ConsumptionKwhPer100km float64
}
