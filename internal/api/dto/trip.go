package dto

import "time"

type TripEstimateRequest struct {
	From              string     `json:"from"`
	To                string     `json:"to"`
	Via               string     `json:"via"`
	VehicleID         string     `json:"vehicle_id"`
	BatteryPercentage int        `json:"battery_percentage"`
	TrailerWeightKg   float64    `json:"trailer_weight_kg"`
	RouteType         string     `json:"route_type"`
	DesiredArrival    *time.Time `json:"desired_arrival"`
}

type TripEstimateResponse struct {
	DistanceKm            float64          `json:"distance_km"`
	TravelMinutes         int              `json:"travel_minutes"`
	ChargingRequired      bool             `json:"charging_required"`
	ChargingStops         int              `json:"charging_stops"`
	ChargingMinutes       int              `json:"charging_minutes"`
	MandatoryStation      *StationResponse `json:"mandatory_station,omitempty"`
	ChargeBeforeDeparture bool             `json:"charge_before_departure"`
	ArrivalBatteryPercent float64          `json:"arrival_battery_percent"`
	RecommendedDeparture  *time.Time       `json:"recommended_departure,omitempty"`
}
