package handlers

import (
	"log"
	"net/http"
	"route-planner-service/internal/api/dto"
	"route-planner-service/internal/platform/obs"
	"route-planner-service/internal/ports"
)

// FleetHandler exposes the stored drivers and locations read-only.
type FleetHandler struct {
	Repo ports.FleetRepository
}

func (h *FleetHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	ctx := r.Context()
	drivers, err := h.Repo.ListDrivers(ctx)
	if err != nil {
		log.Printf("req_id=%s list drivers failed: %v", obs.RequestID(ctx), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	locations, profits, err := h.Repo.ListLocations(ctx)
	if err != nil {
		log.Printf("req_id=%s list locations failed: %v", obs.RequestID(ctx), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.FleetResponse{
		Drivers:   make([]dto.CoordinatesRequest, 0, len(drivers)),
		Locations: make([]dto.LocationResponse, 0, len(locations)),
	}
	for _, d := range drivers {
		res.Drivers = append(res.Drivers, dto.CoordinatesRequest{X: d.X, Y: d.Y})
	}
	for i, l := range locations {
		res.Locations = append(res.Locations, dto.LocationResponse{X: l.X, Y: l.Y, Profit: profits[i]})
	}

	writeJSON(w, r, http.StatusOK, res)
}
