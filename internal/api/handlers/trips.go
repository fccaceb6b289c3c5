package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"ev-trip-service/internal/api/dto"
	"ev-trip-service/internal/domain"
	"ev-trip-service/internal/engine"
	"ev-trip-service/internal/ports"
)

type TripHandler struct {
	Vehicles ports.VehicleRepository
	Stations ports.StationRepository
	Geocoder ports.Geocoder
}

// Estimate orchestrates trip feasibility for one request: duration and
// charging estimation first, then mandatory-stop selection against the
// station catalog when charging is required.
//
// A trip whose battery cannot reach any station is still a valid
// estimate; it comes back with charge_before_departure set rather than
// an error status. Geocoding failures are a 422: the estimate depends
// on inputs the service could not resolve.
func (h *TripHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	var req dto.TripEstimateRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	from := strings.TrimSpace(req.From)
	to := strings.TrimSpace(req.To)
	if from == "" || to == "" {
		writeError(w, r, http.StatusBadRequest, "from and to are required")
		return
	}
	if strings.TrimSpace(req.VehicleID) == "" {
		writeError(w, r, http.StatusBadRequest, "vehicle_id is required")
		return
	}
	if req.BatteryPercentage < 0 || req.BatteryPercentage > 100 {
		writeError(w, r, http.StatusBadRequest, "battery_percentage must be between 0 and 100")
		return
	}
	if req.TrailerWeightKg < 0 {
		writeError(w, r, http.StatusBadRequest, "trailer_weight_kg cannot be negative")
		return
	}

	routeType, ok := parseRouteType(req.RouteType)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "route_type must be one of fastest, shortest, eco")
		return
	}

	vehicle, err := h.Vehicles.GetVehicle(r.Context(), req.VehicleID)
	if errors.Is(err, ports.ErrVehicleNotFound) {
		writeError(w, r, http.StatusNotFound, "vehicle not found")
		return
	}
	if err != nil {
		log.Printf("get vehicle failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	tripReq := domain.TripRequest{
		From:              from,
		To:                to,
		Via:               strings.TrimSpace(req.Via),
		TrailerWeightKg:   req.TrailerWeightKg,
		BatteryPercentage: req.BatteryPercentage,
		RouteType:         routeType,
		DesiredArrival:    req.DesiredArrival,
	}

	estimate := engine.RecommendDeparture(tripReq, vehicle)

	res := dto.TripEstimateResponse{
		DistanceKm:            estimate.DistanceKm,
		TravelMinutes:         estimate.TravelMinutes,
		ChargingRequired:      estimate.ChargingRequired,
		ChargingStops:         estimate.ChargingStops,
		ChargingMinutes:       estimate.ChargingMinutes,
		ArrivalBatteryPercent: estimate.ArrivalBatteryPercent,
		RecommendedDeparture:  estimate.RecommendedDeparture,
	}

	if estimate.ChargingRequired {
		stations, err := h.Stations.ListStations(r.Context())
		if err != nil {
			log.Printf("list stations failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}

		stop, err := engine.FindMandatoryStop(
			r.Context(), from, to, vehicle, req.BatteryPercentage, stations, h.Geocoder,
		)
		switch {
		case errors.Is(err, engine.ErrGeocodingFailed):
			writeError(w, r, http.StatusUnprocessableEntity, "could not geocode trip endpoints")
			return
		case errors.Is(err, engine.ErrNoReachableStation):
			res.ChargeBeforeDeparture = true
		case err != nil:
			log.Printf("find mandatory stop failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		case stop != nil:
			s := stationToResponse(stop.Station)
			res.MandatoryStation = &s
		}
	}

	writeJSON(w, r, http.StatusOK, res)
}

func parseRouteType(s string) (domain.RouteType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		// Absent route type gets the neutral profile.
		return "", true
	case string(domain.RouteFastest):
		return domain.RouteFastest, true
	case string(domain.RouteShortest):
		return domain.RouteShortest, true
	case string(domain.RouteEco):
		return domain.RouteEco, true
	default:
		return "", false
	}
}
