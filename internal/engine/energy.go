package engine

import (
	"math"

	"ev-trip-service/internal/domain"
)

// Energy-model derating factors.
const (
	// seasonalDerating is the fixed range penalty applied year-round.
	// Calibrated for Nordic conditions where cabin heating and cold
	// batteries dominate.
	seasonalDerating = 0.85

	// trailerDerating is a coarse binary penalty: any trailer at all
	// costs 35% of range. Deliberately not weight-proportional.
	trailerDerating = 0.65

	// safetyFraction reserves 10% of current range before charging is
	// considered necessary.
	safetyFraction = 0.9

	// chargePerStopFraction assumes each en-route stop charges back up
	// to 70% of effective range.
	chargePerStopFraction = 0.7

	// criticalFloorFraction is the 10% battery level a charging stop
	// must have happened by.
	criticalFloorFraction = 0.10
)

// ChargingPlan describes whether and how long a trip must charge.
type ChargingPlan struct {
	Required bool
	Stops    int
	Minutes  int
}

// EffectiveRangeKm converts a vehicle's declared range into the range
// realistically available for this trip: route-type consumption,
// trailer presence and the fixed seasonal derating, before any battery
// scaling.
func EffectiveRangeKm(v domain.Vehicle, rt domain.RouteType, trailerWeightKg float64) float64 {
	r := v.RangeKm * rangeFactor(rt)
	if trailerWeightKg > 0 {
		r *= trailerDerating
	}
	return r * seasonalDerating
}

// UsableRangeKm scales the effective range by the current battery
// percentage. Out-of-range percentages are clamped, not rejected:
// they come from form fields that may be mid-edit.
func UsableRangeKm(v domain.Vehicle, batteryPercentage int, trailerWeightKg float64, rt domain.RouteType) float64 {
	pct := clampPercent(batteryPercentage)
	return EffectiveRangeKm(v, rt, trailerWeightKg) * float64(pct) / 100.0
}

// PlanCharging determines whether the trip needs charging stops and
// estimates the total minutes spent charging.
//
// A trip within 90% of current range needs no charging, except that a
// low battery (<40%) on a long leg (>150 km) still gets a single
// 30-minute safety top-up. Beyond that, each stop is assumed to
// restore 70% of effective range; the first stop's duration depends on
// the starting battery tier, later stops cost a flat 35 minutes, and
// every stop carries a station-search buffer (larger on eco routes,
// where chargers are sparser).
func PlanCharging(distanceKm, effectiveRangeKm, currentRangeKm float64, batteryPercentage int, rt domain.RouteType) ChargingPlan {
	pct := clampPercent(batteryPercentage)

	if distanceKm <= currentRangeKm*safetyFraction {
		if pct < 40 && distanceKm > 150 {
			return ChargingPlan{Required: true, Stops: 1, Minutes: 30}
		}
		return ChargingPlan{}
	}

	remaining := distanceKm - currentRangeKm*safetyFraction

	perStop := effectiveRangeKm * chargePerStopFraction
	stops := 1
	if perStop > 0 {
		stops = int(math.Ceil(remaining / perStop))
		if stops < 1 {
			stops = 1
		}
	}

	first := 25
	switch {
	case pct < 20:
		first = 60
	case pct < 50:
		first = 40
	}

	searchBuffer := 15
	if rt == domain.RouteEco {
		searchBuffer = 20
	}

	minutes := first + (stops-1)*35 + stops*searchBuffer

	return ChargingPlan{Required: true, Stops: stops, Minutes: minutes}
}

func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
