package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"route-planner-service/internal/adapters/distance"
	"route-planner-service/internal/domain"
	"route-planner-service/internal/platform/metrics"
	"route-planner-service/internal/platform/obs"
	"route-planner-service/internal/ports"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type PlanOptions struct {
	// Defaults to Euclidean distance.
	Model   ports.DistanceModel
	Cluster ClusterOptions
	// Upper bound on concurrent per-driver route builds. Values < 1 mean 1.
	Workers int
}

func DefaultPlanOptions() PlanOptions {
	return PlanOptions{
		Model:   distance.NewEuclideanModel(),
		Cluster: DefaultClusterOptions(),
		Workers: 4,
	}
}

// PlanDeliveries runs the whole pipeline for one request: validation, direct
// distance matrix, shortest-path relaxation, k-means clustering, cluster to
// driver matching, and one nearest-neighbor route per driver. The profit
// ranking is computed alongside and does not influence routing.
func PlanDeliveries(
	ctx context.Context,
	req *domain.PlanRequest,
	opts PlanOptions,
) (_ *domain.Plan, err error) {
	defer obs.Time(ctx, "plan.PlanDeliveries")(&err)
	defer func() { metrics.PlannerRuns.WithLabelValues(outcomeLabel(err)).Inc() }()

	if err := ValidateRequest(req); err != nil {
		return nil, fmt.Errorf("plan deliveries: %w", err)
	}

	model := opts.Model
	if model == nil {
		model = distance.NewEuclideanModel()
	}

	arena := domain.NewArena(req.Drivers, req.Locations)
	numDrivers := arena.NumDrivers()

	priority := PrioritizeJobs(req.Profits)

	done := stageTimer("distance_matrix")
	matrix := BuildDistanceMatrix(arena, model)
	done()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("plan deliveries: %w", err)
	}

	done = stageTimer("shortest_paths")
	err = ShortestPaths(ctx, matrix)
	done()
	if err != nil {
		return nil, fmt.Errorf("plan deliveries: %w", err)
	}

	done = stageTimer("cluster")
	result, err := ClusterLocations(arena.Locations(), numDrivers, model, opts.Cluster)
	done()
	if err != nil {
		return nil, fmt.Errorf("plan deliveries: %w", err)
	}
	metrics.ClusterIterations.Observe(float64(result.Iterations))

	starts := make([]domain.Point, 0, numDrivers)
	for i := 0; i < numDrivers; i++ {
		starts = append(starts, arena.DriverStart(i))
	}

	clusters, err := AssignClustersToDrivers(starts, result.Clusters, model)
	if err != nil {
		return nil, fmt.Errorf("plan deliveries: %w", err)
	}

	drivers := make([]*domain.Driver, numDrivers)
	for i := range drivers {
		drivers[i] = domain.NewDriver(i+1, starts[i].ID)
	}

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	// Routes have no cross-cluster dependency; each goroutine owns one slot.
	done = stageTimer("routes")
	routes := make([]domain.DriverRoute, numDrivers)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range drivers {
		i := i // per-iteration copy; go 1.21 loop vars are shared across iterations
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			d := drivers[i]
			if err := d.AssignRoute(NearestNeighborRoute(arena.Resolve(clusters[i].Members), matrix)); err != nil {
				return err
			}

			stops := d.Route()
			dist := RouteDistance(d.Start, stops, matrix)
			if math.IsInf(dist, 0) || math.IsNaN(dist) {
				return fmt.Errorf("driver %d route distance is not finite: %w", d.ID, domain.ErrInvalidInput)
			}

			routes[i] = domain.DriverRoute{
				DriverID: d.ID,
				Start:    arena.At(d.Start),
				Stops:    arena.Resolve(stops),
				Distance: dist,
			}
			return nil
		})
	}
	err = g.Wait()
	done()
	if err != nil {
		return nil, fmt.Errorf("plan deliveries: build routes: %w", err)
	}

	log.Printf(
		"req_id=%s plan drivers=%d locations=%d iterations=%d",
		obs.RequestID(ctx), numDrivers, arena.NumLocations(), result.Iterations,
	)

	return &domain.Plan{
		PlanID:        uuid.NewString(),
		CreatedAt:     time.Now().UTC(),
		Routes:        routes,
		PriorityOrder: priority,
		Iterations:    result.Iterations,
	}, nil
}

func stageTimer(stage string) func() {
	start := time.Now()
	return func() {
		metrics.PlannerStageDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
	}
}

func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidInputSize):
		return "invalid_input"
	case errors.Is(err, domain.ErrDegenerateClustering):
		return "degenerate"
	case errors.Is(err, domain.ErrNonConvergence):
		return "non_convergence"
	default:
		return "error"
	}
}
