package services

import (
	"context"
	"math"
	"route-planner-service/internal/adapters/distance"
	"route-planner-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioRequest() *domain.PlanRequest {
	return &domain.PlanRequest{
		Drivers:   []domain.Coordinates{{X: 0, Y: 0}, {X: 20, Y: 20}},
		Locations: []domain.Coordinates{{X: 1, Y: 1}, {X: 2, Y: 0}, {X: 19, Y: 19}, {X: 21, Y: 21}},
		Profits:   []int{10, 50, 20, 5},
	}
}

func stopCoords(stops []domain.Point) []domain.Coordinates {
	out := make([]domain.Coordinates, 0, len(stops))
	for _, s := range stops {
		out = append(out, domain.Coordinates{X: s.X, Y: s.Y})
	}
	return out
}

func TestPlanDeliveriesScenario(t *testing.T) {
	plan, err := PlanDeliveries(context.Background(), scenarioRequest(), DefaultPlanOptions())
	require.NoError(t, err)

	require.Len(t, plan.Routes, 2)
	assert.NotEmpty(t, plan.PlanID)

	r1 := plan.Routes[0]
	assert.Equal(t, 1, r1.DriverID)
	assert.Equal(t, []domain.Coordinates{{X: 1, Y: 1}, {X: 2, Y: 0}}, stopCoords(r1.Stops))
	assert.InDelta(t, 2*math.Sqrt2, r1.Distance, 1e-9)

	r2 := plan.Routes[1]
	assert.Equal(t, 2, r2.DriverID)
	assert.Equal(t, []domain.Coordinates{{X: 19, Y: 19}, {X: 21, Y: 21}}, stopCoords(r2.Stops))
	assert.InDelta(t, math.Sqrt2+2*math.Sqrt2, r2.Distance, 1e-9)

	assert.Equal(t, []int{1, 2, 0, 3}, plan.PriorityOrder)
	assert.Equal(t, 3, plan.Iterations)
}

func TestPlanDeliveriesOneLocationPerDriver(t *testing.T) {
	req := &domain.PlanRequest{
		Drivers:   []domain.Coordinates{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}},
		Locations: []domain.Coordinates{{X: 1, Y: 0}, {X: 9, Y: 0}, {X: 0, Y: 9}},
		Profits:   []int{1, 2, 3},
	}

	plan, err := PlanDeliveries(context.Background(), req, DefaultPlanOptions())
	require.NoError(t, err)

	total := 0
	for _, r := range plan.Routes {
		assert.Len(t, r.Stops, 1, "driver %d", r.DriverID)
		total += len(r.Stops)
	}
	assert.Equal(t, 3, total)
}

func TestPlanDeliveriesRejectsInvalidSize(t *testing.T) {
	req := &domain.PlanRequest{
		Drivers:   []domain.Coordinates{{}, {}, {}},
		Locations: []domain.Coordinates{{X: 1}, {X: 2}},
		Profits:   []int{1, 1},
	}

	_, err := PlanDeliveries(context.Background(), req, DefaultPlanOptions())
	assert.ErrorIs(t, err, domain.ErrInvalidInputSize)
}

func TestPlanDeliveriesDegenerateFailPolicy(t *testing.T) {
	req := &domain.PlanRequest{
		Drivers:   []domain.Coordinates{{}, {}},
		Locations: []domain.Coordinates{{X: 3, Y: 3}, {X: 3, Y: 3}},
		Profits:   []int{0, 0},
	}
	opts := DefaultPlanOptions()
	opts.Cluster.EmptyPolicy = EmptyClusterFail

	_, err := PlanDeliveries(context.Background(), req, opts)
	assert.ErrorIs(t, err, domain.ErrDegenerateClustering)

	opts.Cluster.EmptyPolicy = EmptyClusterReseed
	plan, err := PlanDeliveries(context.Background(), req, opts)
	require.NoError(t, err)
	for _, r := range plan.Routes {
		assert.Len(t, r.Stops, 1)
	}
}

func TestPlanDeliveriesDeterministic(t *testing.T) {
	req := &domain.PlanRequest{
		Drivers: []domain.Coordinates{{X: 0, Y: 0}, {X: 50, Y: 50}, {X: 100, Y: 0}},
		Locations: []domain.Coordinates{
			{X: 3, Y: 4}, {X: 48, Y: 52}, {X: 97, Y: 2}, {X: 10, Y: 1}, {X: 51, Y: 47},
			{X: 95, Y: 8}, {X: 5, Y: 9}, {X: 60, Y: 40}, {X: 88, Y: 3}, {X: 2, Y: 2},
		},
		Profits: []int{4, 4, 9, 1, 0, 9, 3, 3, 7, 2},
	}

	serial := DefaultPlanOptions()
	serial.Workers = 1

	first, err := PlanDeliveries(context.Background(), req, serial)
	require.NoError(t, err)
	second, err := PlanDeliveries(context.Background(), req, DefaultPlanOptions())
	require.NoError(t, err)

	assert.Equal(t, first.Routes, second.Routes)
	assert.Equal(t, first.PriorityOrder, second.PriorityOrder)
	assert.NotEqual(t, first.PlanID, second.PlanID)

	// every location appears in exactly one route
	seen := make(map[domain.PointID]bool)
	for _, r := range first.Routes {
		for _, s := range r.Stops {
			assert.False(t, seen[s.ID], "duplicate stop %d", s.ID)
			seen[s.ID] = true
		}
	}
	assert.Len(t, seen, len(req.Locations))
}

func TestPlanDeliveriesCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := PlanDeliveries(ctx, scenarioRequest(), DefaultPlanOptions())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPlanDeliveriesRejectsOverflowingCoordinates(t *testing.T) {
	req := &domain.PlanRequest{
		Drivers:   []domain.Coordinates{{X: 0, Y: 0}},
		Locations: []domain.Coordinates{{X: 1e308, Y: 0}, {X: -1e308, Y: 0}},
		Profits:   []int{1, 2},
	}

	plan, err := PlanDeliveries(context.Background(), req, DefaultPlanOptions())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, plan)
}

func TestPlanDeliveriesRejectsNonFiniteRouteDistance(t *testing.T) {
	req := &domain.PlanRequest{
		Drivers:   []domain.Coordinates{{X: 0, Y: 0}},
		Locations: []domain.Coordinates{{X: 3, Y: 4}},
		Profits:   []int{1},
	}
	opts := DefaultPlanOptions()
	// driver 1 cannot reach location 2 and there is no detour
	opts.Model = distance.NewMockDistanceModel([]distance.MockPair{{From: 1, To: 2, Distance: math.Inf(1)}})

	plan, err := PlanDeliveries(context.Background(), req, opts)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, plan)
}

func TestPlanDeliveriesRecordsRouteOnDriver(t *testing.T) {
	plan, err := PlanDeliveries(context.Background(), scenarioRequest(), DefaultPlanOptions())
	require.NoError(t, err)

	for _, r := range plan.Routes {
		for _, s := range r.Stops {
			assert.NotEqual(t, r.Start.ID, s.ID)
		}
		assert.Equal(t, domain.PointID(r.DriverID), r.Start.ID)
	}
}

func TestFingerprintStable(t *testing.T) {
	opts := DefaultClusterOptions()

	a, err := Fingerprint(scenarioRequest(), opts)
	require.NoError(t, err)
	b, err := Fingerprint(scenarioRequest(), opts)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	other := scenarioRequest()
	other.Profits[0] = 11
	c, err := Fingerprint(other, opts)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)

	opts.EmptyPolicy = EmptyClusterFail
	d, err := Fingerprint(scenarioRequest(), opts)
	require.NoError(t, err)
	assert.NotEqual(t, a, d)
}
