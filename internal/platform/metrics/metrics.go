package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the service.
	Registry = prometheus.NewRegistry()

	// PlannerRuns counts planning runs by outcome (ok, invalid_input, degenerate, non_convergence, error).
	PlannerRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "planner_runs_total", Help: "Planning runs by outcome."},
		[]string{"outcome"},
	)
	// PlannerStageDuration records pipeline stage durations in seconds.
	PlannerStageDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "planner_stage_duration_seconds", Help: "Planner stage duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"stage"},
	)
	// ClusterIterations observes how many k-means iterations a run needed.
	ClusterIterations = prometheus.NewHistogram(
		prometheus.HistogramOpts{Name: "planner_cluster_iterations", Help: "k-means iterations per planning run.", Buckets: []float64{1, 2, 3, 5, 8, 13, 21, 34, 55, 100}},
	)
	// PlanCacheLookups counts plan cache lookups by result (hit, miss, error).
	PlanCacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "plan_cache_lookups_total", Help: "Plan cache lookups by result."},
		[]string{"result"},
	)

	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)
)

var regOnce sync.Once

// Register adds all collectors to Registry. Safe to call more than once.
func Register() {
	regOnce.Do(func() {
		Registry.MustRegister(PlannerRuns)
		Registry.MustRegister(PlannerStageDuration)
		Registry.MustRegister(ClusterIterations)
		Registry.MustRegister(PlanCacheLookups)
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}
