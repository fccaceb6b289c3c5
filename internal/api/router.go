package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"ev-trip-service/internal/api/handlers"
	"ev-trip-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay
// unaware of concrete adapters).
func NewRouter(
	vehicles ports.VehicleRepository,
	stations ports.StationRepository,
	ferries ports.FerryRepository,
	geocoder ports.Geocoder,
) http.Handler {
	vehicleHandler := &handlers.VehicleHandler{Repo: vehicles}
	stationHandler := &handlers.StationHandler{Repo: stations}
	ferryHandler := &handlers.FerryHandler{Repo: ferries}
	tripHandler := &handlers.TripHandler{
		Vehicles: vehicles,
		Stations: stations,
		Geocoder: geocoder,
	}
	chargingHandler := &handlers.ChargingHandler{
		Vehicles: vehicles,
		Stations: stations,
		Geocoder: geocoder,
	}

	r := mux.NewRouter()
	r.HandleFunc("/health", handlers.Health).Methods(http.MethodGet)

	v1 := r.PathPrefix("/api/v1").Subrouter()
	v1.HandleFunc("/vehicles", vehicleHandler.List).Methods(http.MethodGet)
	v1.HandleFunc("/stations", stationHandler.List).Methods(http.MethodGet)
	v1.HandleFunc("/ferries", ferryHandler.List).Methods(http.MethodGet)
	v1.HandleFunc("/ferries/reachability", ferryHandler.Reachability).Methods(http.MethodPost)
	v1.HandleFunc("/trips/estimate", tripHandler.Estimate).Methods(http.MethodPost)
	v1.HandleFunc("/charging/plan", chargingHandler.Plan).Methods(http.MethodPost)

	return loggingMiddleware(r)
}
