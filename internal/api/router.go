package api

import (
	"net/http"
	"route-planner-service/internal/api/handlers"
	"route-planner-service/internal/platform/metrics"
	"route-planner-service/internal/ports"
	"route-planner-service/internal/services"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterConfig struct {
	// Optional stored fleet. Nil disables /fleet and /plans/fleet.
	Fleet interface {
		ports.FleetRepository
		ports.InputProvider
	}
	Cache   ports.PlanCache
	Options services.PlanOptions

	RateLimitRPS   float64
	RateLimitBurst int

	// Zero selects the handler defaults.
	MaxBodyBytes int64
	MaxLocations int
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	planHandler := &handlers.PlanHandler{
		Cache:        cfg.Cache,
		Options:      cfg.Options,
		MaxBodyBytes: cfg.MaxBodyBytes,
		MaxLocations: cfg.MaxLocations,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/plans", planHandler.Plan)
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	if cfg.Fleet != nil {
		planHandler.Fleet = cfg.Fleet
		fleetHandler := &handlers.FleetHandler{Repo: cfg.Fleet}
		mux.HandleFunc("/fleet", fleetHandler.List)
		mux.HandleFunc("/plans/fleet", planHandler.PlanFleet)
	}

	var h http.Handler = mux
	h = rateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst, h)
	h = loggingMiddleware(h)
	h = requestIDMiddleware(h)
	return h
}
