package dto

import "time"

type FerryReachabilityRequest struct {
	Destination string     `json:"destination"`
	CurrentLat  *float64   `json:"current_lat"`
	CurrentLon  *float64   `json:"current_lon"`
	Now         *time.Time `json:"now"`
}

type FerryReachabilityResponse struct {
	Route               FerryRouteResponse `json:"route"`
	NextDeparture       time.Time          `json:"next_departure"`
	FollowingDeparture  time.Time          `json:"following_departure"`
	TravelMinutesToPort int                `json:"travel_minutes_to_port"`
	ReachabilityPercent int                `json:"reachability_percent"`
	Tier                string             `json:"tier"`
}

type ListFerryReachabilityResponse struct {
	Results []FerryReachabilityResponse `json:"results"`
}
