package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"ev-trip-service/internal/api/dto"
	"ev-trip-service/internal/domain"
	"ev-trip-service/internal/engine"
	"ev-trip-service/internal/ports"
)

// FerryHandler exposes the ferry timetable and reachability estimates.
type FerryHandler struct {
	Repo ports.FerryRepository
}

func (h *FerryHandler) List(w http.ResponseWriter, r *http.Request) {
	routes, err := h.Repo.ListFerryRoutes(r.Context())
	if err != nil {
		log.Printf("list ferry routes failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListFerryRoutesResponse{
		Ferries: make([]dto.FerryRouteResponse, 0, len(routes)),
	}
	for _, f := range routes {
		res.Ferries = append(res.Ferries, ferryRouteToResponse(f))
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Reachability classifies the next departures of every ferry route
// relevant to the destination. An unknown destination yields an empty
// result list, not an error.
func (h *FerryHandler) Reachability(w http.ResponseWriter, r *http.Request) {
	var req dto.FerryReachabilityRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if strings.TrimSpace(req.Destination) == "" {
		writeError(w, r, http.StatusBadRequest, "destination is required")
		return
	}
	if (req.CurrentLat == nil) != (req.CurrentLon == nil) {
		writeError(w, r, http.StatusBadRequest, "current_lat and current_lon must be set together")
		return
	}

	routes, err := h.Repo.ListFerryRoutes(r.Context())
	if err != nil {
		log.Printf("list ferry routes failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	var location *domain.Coordinate
	if req.CurrentLat != nil {
		location = &domain.Coordinate{Lat: *req.CurrentLat, Lon: *req.CurrentLon}
	}

	now := time.Now()
	if req.Now != nil {
		now = *req.Now
	}

	estimates := engine.EstimateFerryReachability(location, req.Destination, routes, now)

	res := dto.ListFerryReachabilityResponse{
		Results: make([]dto.FerryReachabilityResponse, 0, len(estimates)),
	}
	for _, e := range estimates {
		res.Results = append(res.Results, dto.FerryReachabilityResponse{
			Route:               ferryRouteToResponse(e.Route),
			NextDeparture:       e.NextDeparture,
			FollowingDeparture:  e.FollowingDeparture,
			TravelMinutesToPort: e.TravelMinutesToPort,
			ReachabilityPercent: e.ReachabilityPercent,
			Tier:                string(e.Tier),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func ferryRouteToResponse(f domain.FerryRoute) dto.FerryRouteResponse {
	return dto.FerryRouteResponse{
		Name:            f.Name,
		FromPort:        f.FromPort,
		ToPort:          f.ToPort,
		DurationMinutes: f.DurationMinutes,
		ScheduledTimes:  f.ScheduledTimes,
	}
}
