// Package engine implements the EV trip feasibility calculations:
// duration estimation, energy and charging planning, mandatory-stop
// selection, ferry reachability and departure recommendation.
//
// Every function is a pure computation over read-only snapshots plus,
// where relevant, the wall-clock time passed in by the caller. The
// engine performs no I/O of its own; geocoding is the one collaborator
// it calls, injected through a port.
package engine

import "ev-trip-service/internal/domain"

// Route-type adjustment factors. Fastest routes trade a little extra
// motorway distance for time; shortest routes are slower but shorter;
// eco routes avoid tolls and highways, adding both time and distance.
func timeFactor(rt domain.RouteType) float64 {
	switch rt {
	case domain.RouteFastest:
		return 0.95
	case domain.RouteShortest:
		return 1.10
	case domain.RouteEco:
		return 1.05
	default:
		return 1.0
	}
}

func distanceFactor(rt domain.RouteType) float64 {
	switch rt {
	case domain.RouteFastest:
		return 1.02
	case domain.RouteShortest:
		return 0.95
	case domain.RouteEco:
		return 1.08
	default:
		return 1.0
	}
}

// Consumption-side factor applied to vehicle range: driving fast costs
// range, eco driving stretches it.
func rangeFactor(rt domain.RouteType) float64 {
	switch rt {
	case domain.RouteFastest:
		return 0.95
	case domain.RouteEco:
		return 1.10
	default:
		return 1.0
	}
}
