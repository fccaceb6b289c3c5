package handlers

import (
	"log"
	"net/http"

	"ev-trip-service/internal/api/dto"
	"ev-trip-service/internal/domain"
	"ev-trip-service/internal/ports"
)

// StationHandler exposes the read-only charging station catalog.
type StationHandler struct {
	Repo ports.StationRepository
}

func (h *StationHandler) List(w http.ResponseWriter, r *http.Request) {
	stations, err := h.Repo.ListStations(r.Context())
	if err != nil {
		log.Printf("list stations failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListStationsResponse{
		Stations: make([]dto.StationResponse, 0, len(stations)),
	}
	for _, s := range stations {
		res.Stations = append(res.Stations, stationToResponse(s))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func stationToResponse(s domain.ChargingStation) dto.StationResponse {
	return dto.StationResponse{
		ID:          s.ID,
		Name:        s.Name,
		Lat:         s.Coordinate.Lat,
		Lon:         s.Coordinate.Lon,
		Available:   s.Available,
		Total:       s.Total,
		FastCharger: s.FastCharger,
		CostPerUnit: s.CostPerUnit,
	}
}
