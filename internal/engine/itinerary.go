package engine

import (
	"math"
	"time"

	"ev-trip-service/internal/domain"
)

// Fixed schedule buffers. Ferry and traffic buffers double on long
// trips; the weather buffer is constant.
const (
	shortTripBufferMinutes = 30
	longTripBufferMinutes  = 60
	longTripThresholdKm    = 300.0
	weatherBufferMinutes   = 20
)

// RecommendDeparture combines the duration estimate, the charging plan
// and fixed buffers into a total trip time and, when a desired arrival
// is set, the departure time that meets it.
//
// Pure composition: a linear pipeline with no retries, since every
// input is validated (or clamped) upstream. The mandatory charging
// station is left nil here; callers with station data compose this
// with FindMandatoryStop.
func RecommendDeparture(req domain.TripRequest, vehicle domain.Vehicle) domain.TripEstimate {
	travel := estimateLegs(req)

	trailer := req.TrailerWeightKg
	if trailer < 0 {
		trailer = 0
	}

	effectiveRange := EffectiveRangeKm(vehicle, req.RouteType, trailer)
	currentRange := UsableRangeKm(vehicle, req.BatteryPercentage, trailer, req.RouteType)
	plan := PlanCharging(travel.DistanceKm, effectiveRange, currentRange, req.BatteryPercentage, req.RouteType)

	ferryBuffer := scaledBuffer(travel.DistanceKm, req.RouteType)
	trafficBuffer := scaledBuffer(travel.DistanceKm, req.RouteType)

	totalMinutes := travel.Minutes + ferryBuffer + trafficBuffer + plan.Minutes + weatherBufferMinutes

	estimate := domain.TripEstimate{
		DistanceKm:            travel.DistanceKm,
		TravelMinutes:         travel.Minutes,
		ChargingRequired:      plan.Required,
		ChargingStops:         plan.Stops,
		ChargingMinutes:       plan.Minutes,
		ArrivalBatteryPercent: arrivalBatteryPercent(req, effectiveRange, travel.DistanceKm),
	}

	if req.DesiredArrival != nil {
		departure := req.DesiredArrival.Add(-time.Duration(totalMinutes) * time.Minute)
		estimate.RecommendedDeparture = &departure
	}

	return estimate
}

// TotalMinutes reconstructs the buffer arithmetic behind an estimate.
// Holds exactly: desiredArrival == recommendedDeparture + TotalMinutes.
func TotalMinutes(e domain.TripEstimate, rt domain.RouteType) int {
	return e.TravelMinutes +
		2*scaledBuffer(e.DistanceKm, rt) +
		e.ChargingMinutes +
		weatherBufferMinutes
}

// estimateLegs sums the from->via->to legs when a via point is set.
func estimateLegs(req domain.TripRequest) DurationEstimate {
	if req.Via == "" {
		return EstimateDuration(req.From, req.To, req.RouteType)
	}

	first := EstimateDuration(req.From, req.Via, req.RouteType)
	second := EstimateDuration(req.Via, req.To, req.RouteType)
	return DurationEstimate{
		Minutes:    first.Minutes + second.Minutes,
		DistanceKm: first.DistanceKm + second.DistanceKm,
	}
}

func scaledBuffer(distanceKm float64, rt domain.RouteType) int {
	base := shortTripBufferMinutes
	if distanceKm > longTripThresholdKm {
		base = longTripBufferMinutes
	}
	return int(math.Round(float64(base) * timeFactor(rt)))
}

// arrivalBatteryPercent estimates the battery level at the destination
// assuming no en-route recharge, floored at 5%. With charging stops
// planned the real arrival level is higher; this is the worst case.
func arrivalBatteryPercent(req domain.TripRequest, effectiveRangeKm, distanceKm float64) float64 {
	pct := float64(clampPercent(req.BatteryPercentage))
	if effectiveRangeKm <= 0 {
		return 5
	}

	arrival := pct - (distanceKm/effectiveRangeKm)*100.0
	if arrival < 5 {
		return 5
	}
	return arrival
}

