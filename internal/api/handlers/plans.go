package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"route-planner-service/internal/api/dto"
	"route-planner-service/internal/domain"
	"route-planner-service/internal/platform/metrics"
	"route-planner-service/internal/platform/obs"
	"route-planner-service/internal/ports"
	"route-planner-service/internal/services"
)

const (
	DefaultMaxBodyBytes = 1 << 20
	DefaultMaxLocations = 2000
)

type PlanHandler struct {
	// Source for POST /plans/fleet. Nil answers 404 there.
	Fleet ports.InputProvider
	// Optional result cache keyed by request fingerprint.
	Cache   ports.PlanCache
	Options services.PlanOptions

	// Zero means DefaultMaxBodyBytes / DefaultMaxLocations. Planning is cubic
	// in drivers+locations, so the location cap bounds the work per request.
	MaxBodyBytes int64
	MaxLocations int
}

// Plan computes routes for the drivers and locations in the request body.
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PlanRequest

	maxBytes := h.MaxBodyBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodyBytes
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, r, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	h.plan(w, r, toDomainRequest(req))
}

// PlanFleet computes routes for the fleet stored in the database.
func (h *PlanHandler) PlanFleet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if h.Fleet == nil {
		writeError(w, r, http.StatusNotFound, "no fleet store configured")
		return
	}

	req, err := h.Fleet.ReadRequest(r.Context())
	if err != nil {
		log.Printf("req_id=%s read fleet failed: %v", obs.RequestID(r.Context()), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	h.plan(w, r, req)
}

func (h *PlanHandler) plan(w http.ResponseWriter, r *http.Request, req *domain.PlanRequest) {
	ctx := r.Context()

	maxLocations := h.MaxLocations
	if maxLocations <= 0 {
		maxLocations = DefaultMaxLocations
	}
	if req != nil && (req.NumLocations() > maxLocations || req.NumDrivers() > maxLocations) {
		writePlanError(w, r, fmt.Errorf(
			"drivers=%d locations=%d exceed limit %d: %w",
			req.NumDrivers(), req.NumLocations(), maxLocations, domain.ErrInvalidInputSize,
		))
		return
	}

	// fingerprinting an invalid request is pointless
	if err := services.ValidateRequest(req); err != nil {
		writePlanError(w, r, err)
		return
	}

	var key string
	if h.Cache != nil {
		k, err := services.Fingerprint(req, h.Options.Cluster)
		if err != nil {
			log.Printf("req_id=%s fingerprint failed: %v", obs.RequestID(ctx), err)
		} else {
			key = k
		}
	}

	if key != "" {
		cached, err := h.Cache.Get(ctx, key)
		switch {
		case err == nil:
			metrics.PlanCacheLookups.WithLabelValues("hit").Inc()
			writeJSON(w, r, http.StatusOK, toPlanResponse(cached, true))
			return
		case errors.Is(err, domain.ErrNotFound):
			metrics.PlanCacheLookups.WithLabelValues("miss").Inc()
		default:
			metrics.PlanCacheLookups.WithLabelValues("error").Inc()
			log.Printf("req_id=%s plan cache get failed: %v", obs.RequestID(ctx), err)
		}
	}

	plan, err := services.PlanDeliveries(ctx, req, h.Options)
	if err != nil {
		writePlanError(w, r, err)
		return
	}

	if key != "" {
		if err := h.Cache.Put(ctx, key, plan); err != nil {
			log.Printf("req_id=%s plan cache put failed: %v", obs.RequestID(ctx), err)
		}
	}

	writeJSON(w, r, http.StatusOK, toPlanResponse(plan, false))
}

func toDomainRequest(req dto.PlanRequest) *domain.PlanRequest {
	out := &domain.PlanRequest{
		Drivers:   make([]domain.Coordinates, 0, len(req.Drivers)),
		Locations: make([]domain.Coordinates, 0, len(req.Locations)),
		Profits:   req.Profits,
	}
	for _, d := range req.Drivers {
		out.Drivers = append(out.Drivers, domain.Coordinates{X: d.X, Y: d.Y})
	}
	for _, l := range req.Locations {
		out.Locations = append(out.Locations, domain.Coordinates{X: l.X, Y: l.Y})
	}
	return out
}

func toPlanResponse(p *domain.Plan, cached bool) dto.PlanResponse {
	res := dto.PlanResponse{
		PlanID:        p.PlanID,
		CreatedAt:     p.CreatedAt,
		Iterations:    p.Iterations,
		Cached:        cached,
		Routes:        make([]dto.RouteResponse, 0, len(p.Routes)),
		PriorityOrder: p.PriorityOrder,
	}
	for _, route := range p.Routes {
		stops := make([]dto.StopResponse, 0, len(route.Stops))
		for _, s := range route.Stops {
			stops = append(stops, toStop(s))
		}
		res.Routes = append(res.Routes, dto.RouteResponse{
			DriverID: route.DriverID,
			Start:    toStop(route.Start),
			Stops:    stops,
			Distance: route.Distance,
		})
	}
	return res
}

func toStop(p domain.Point) dto.StopResponse {
	return dto.StopResponse{ID: int(p.ID), X: p.X, Y: p.Y}
}
