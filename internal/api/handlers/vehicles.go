package handlers

import (
	"log"
	"net/http"

	"ev-trip-service/internal/api/dto"
	"ev-trip-service/internal/ports"
)

// VehicleHandler exposes the read-only EV catalog.
type VehicleHandler struct {
	Repo ports.VehicleRepository
}

func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.Repo.ListVehicles(r.Context())
	if err != nil {
		log.Printf("list vehicles failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListVehiclesResponse{
		Vehicles: make([]dto.VehicleResponse, 0, len(vehicles)),
	}
	for _, v := range vehicles {
		res.Vehicles = append(res.Vehicles, dto.VehicleResponse{
			ID:                     v.ID,
			Name:                   v.Name,
			BatteryCapacityKwh:     v.BatteryCapacityKwh,
			RangeKm:                v.RangeKm,
			ConsumptionKwhPer100km: v.ConsumptionKwhPer100km,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
