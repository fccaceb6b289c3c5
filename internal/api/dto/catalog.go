package dto

type VehicleResponse struct {
	ID                     string  `json:"id"`
	Name                   string  `json:"name"`
	BatteryCapacityKwh     float64 `json:"battery_capacity_kwh"`
	RangeKm                float64 `json:"range_km"`
	ConsumptionKwhPer100km float64 `json:"consumption_kwh_per_100km"`
}

type ListVehiclesResponse struct {
	Vehicles []VehicleResponse `json:"vehicles"`
}

type StationResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Available   int     `json:"available"`
	Total       int     `json:"total"`
	FastCharger bool    `json:"fast_charger"`
	CostPerUnit float64 `json:"cost_per_unit"`
}

type ListStationsResponse struct {
	Stations []StationResponse `json:"stations"`
}

type FerryRouteResponse struct {
	Name            string   `json:"name"`
	FromPort        string   `json:"from_port"`
	ToPort          string   `json:"to_port"`
	DurationMinutes int      `json:"duration_minutes"`
	ScheduledTimes  []string `json:"scheduled_times"`
}

type ListFerryRoutesResponse struct {
	Ferries []FerryRouteResponse `json:"ferries"`
}
