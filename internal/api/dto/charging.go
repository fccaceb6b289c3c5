package dto

type ChargingPlanRequest struct {
	From              string  `json:"from"`
	To                string  `json:"to"`
	VehicleID         string  `json:"vehicle_id"`
	BatteryPercentage int     `json:"battery_percentage"`
	TrailerWeightKg   float64 `json:"trailer_weight_kg"`
	RouteType         string  `json:"route_type"`
}

type MandatoryStopResponse struct {
	Station               StationResponse `json:"station"`
	DistanceFromOriginKm  float64         `json:"distance_from_origin_km"`
	ArrivalBatteryPercent float64         `json:"arrival_battery_percent"`
}

type ChargingPlanResponse struct {
	Required              bool                   `json:"required"`
	Stops                 int                    `json:"stops"`
	Minutes               int                    `json:"minutes"`
	MandatoryStop         *MandatoryStopResponse `json:"mandatory_stop,omitempty"`
	ChargeBeforeDeparture bool                   `json:"charge_before_departure"`
}
