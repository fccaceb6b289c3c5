package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"ev-trip-service/internal/api/dto"
	"ev-trip-service/internal/engine"
	"ev-trip-service/internal/ports"
)

type ChargingHandler struct {
	Vehicles ports.VehicleRepository
	Stations ports.StationRepository
	Geocoder ports.Geocoder
}

// Plan computes the charging plan for a trip without assembling a full
// itinerary: stop count, total charging minutes, and the mandatory
// first station when one is needed.
func (h *ChargingHandler) Plan(w http.ResponseWriter, r *http.Request) {
	var req dto.ChargingPlanRequest
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

	travel := engine.EstimateDuration(from, to, routeType)
	effectiveRange := engine.EffectiveRangeKm(vehicle, routeType, req.TrailerWeightKg)
	currentRange := engine.UsableRangeKm(vehicle, req.BatteryPercentage, req.TrailerWeightKg, routeType)
	plan := engine.PlanCharging(travel.DistanceKm, effectiveRange, currentRange, req.BatteryPercentage, routeType)

	res := dto.ChargingPlanResponse{
		Required: plan.Required,
		Stops:    plan.Stops,
		Minutes:  plan.Minutes,
	}

	if plan.Required {
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
			res.MandatoryStop = &dto.MandatoryStopResponse{
				Station:               stationToResponse(stop.Station),
				DistanceFromOriginKm:  stop.DistanceFromOriginKm,
				ArrivalBatteryPercent: stop.ArrivalBatteryPercent,
			}
		}
	}

	writeJSON(w, r, http.StatusOK, res)
}
