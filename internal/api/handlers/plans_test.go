package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"route-planner-service/internal/adapters/cache"
	"route-planner-service/internal/api/dto"
	"route-planner-service/internal/domain"
	"route-planner-service/internal/services"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenarioBody = `{
	"drivers": [{"x": 0, "y": 0}, {"x": 20, "y": 20}],
	"locations": [{"x": 1, "y": 1}, {"x": 2, "y": 0}, {"x": 19, "y": 19}, {"x": 21, "y": 21}],
	"profits": [10, 50, 20, 5]
}`

type stubFleet struct {
	req *domain.PlanRequest
	err error
}

func (s *stubFleet) ReadRequest(ctx context.Context) (*domain.PlanRequest, error) {
	return s.req, s.err
}

func (s *stubFleet) ListDrivers(ctx context.Context) ([]domain.Coordinates, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.req.Drivers, nil
}

func (s *stubFleet) ListLocations(ctx context.Context) ([]domain.Coordinates, []int, error) {
	if s.err != nil {
		return nil, nil, s.err
	}
	return s.req.Locations, s.req.Profits, nil
}

type brokenCache struct{}

func (brokenCache) Get(ctx context.Context, key string) (*domain.Plan, error) {
	return nil, errors.New("connection refused")
}

func (brokenCache) Put(ctx context.Context, key string, plan *domain.Plan) error {
	return errors.New("connection refused")
}

func postPlan(t *testing.T, h http.HandlerFunc, body string) (*httptest.ResponseRecorder, dto.PlanResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/plans", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h(rec, req)

	var res dto.PlanResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	}
	return rec, res
}

func TestPlanHandlerScenario(t *testing.T) {
	h := &PlanHandler{Options: services.DefaultPlanOptions()}

	rec, res := postPlan(t, h.Plan, scenarioBody)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	assert.NotEmpty(t, res.PlanID)
	assert.False(t, res.Cached)
	assert.Equal(t, []int{1, 2, 0, 3}, res.PriorityOrder)
	require.Len(t, res.Routes, 2)

	r1 := res.Routes[0]
	assert.Equal(t, 1, r1.DriverID)
	assert.Equal(t, []dto.StopResponse{{ID: 3, X: 1, Y: 1}, {ID: 4, X: 2, Y: 0}}, r1.Stops)
	assert.InDelta(t, 2*math.Sqrt2, r1.Distance, 1e-9)

	r2 := res.Routes[1]
	assert.Equal(t, dto.StopResponse{ID: 2, X: 20, Y: 20}, r2.Start)
	assert.Equal(t, []dto.StopResponse{{ID: 5, X: 19, Y: 19}, {ID: 6, X: 21, Y: 21}}, r2.Stops)
}

func TestPlanHandlerUsesCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	h := &PlanHandler{
		Cache:   cache.NewRedisPlanCache(client, time.Minute),
		Options: services.DefaultPlanOptions(),
	}

	rec, first := postPlan(t, h.Plan, scenarioBody)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, first.Cached)
	assert.Len(t, mr.Keys(), 1)

	rec, second := postPlan(t, h.Plan, scenarioBody)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, second.Cached)
	assert.Equal(t, first.PlanID, second.PlanID)
	assert.Equal(t, first.Routes, second.Routes)
}

func TestPlanHandlerIgnoresBrokenCache(t *testing.T) {
	h := &PlanHandler{Cache: brokenCache{}, Options: services.DefaultPlanOptions()}

	rec, res := postPlan(t, h.Plan, scenarioBody)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, res.Cached)
	assert.Len(t, res.Routes, 2)
}

func TestPlanHandlerErrors(t *testing.T) {
	failOpts := services.DefaultPlanOptions()
	failOpts.Cluster.EmptyPolicy = services.EmptyClusterFail

	tests := []struct {
		name string
		opts services.PlanOptions
		body string
		want int
	}{
		{"malformed json", services.DefaultPlanOptions(), `{"drivers":`, http.StatusBadRequest},
		{"unknown field", services.DefaultPlanOptions(), `{"trucks": 3}`, http.StatusBadRequest},
		{"two objects", services.DefaultPlanOptions(), `{} {}`, http.StatusBadRequest},
		{"no drivers", services.DefaultPlanOptions(), `{"drivers":[],"locations":[{"x":1,"y":1}],"profits":[1]}`, http.StatusBadRequest},
		{
			"coordinate overflow",
			services.DefaultPlanOptions(),
			`{"drivers":[{"x":0,"y":0}],"locations":[{"x":1e308,"y":0},{"x":-1e308,"y":0}],"profits":[1,2]}`,
			http.StatusBadRequest,
		},
		{"profit mismatch", services.DefaultPlanOptions(), `{"drivers":[{"x":0,"y":0}],"locations":[{"x":1,"y":1}],"profits":[]}`, http.StatusBadRequest},
		{
			"degenerate clustering",
			failOpts,
			`{"drivers":[{"x":0,"y":0},{"x":9,"y":9}],"locations":[{"x":3,"y":3},{"x":3,"y":3}],"profits":[1,2]}`,
			http.StatusUnprocessableEntity,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := &PlanHandler{Options: tc.opts}
			rec, _ := postPlan(t, h.Plan, tc.body)
			assert.Equal(t, tc.want, rec.Code, rec.Body.String())
		})
	}
}

func TestPlanHandlerMethodNotAllowed(t *testing.T) {
	h := &PlanHandler{Options: services.DefaultPlanOptions()}

	rec := httptest.NewRecorder()
	h.Plan(rec, httptest.NewRequest(http.MethodGet, "/plans", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodPost, rec.Header().Get("Allow"))
}

func TestPlanFleet(t *testing.T) {
	fleet := &stubFleet{req: &domain.PlanRequest{
		Drivers:   []domain.Coordinates{{X: 0, Y: 0}},
		Locations: []domain.Coordinates{{X: 3, Y: 4}, {X: 1, Y: 0}},
		Profits:   []int{1, 9},
	}}
	h := &PlanHandler{Fleet: fleet, Options: services.DefaultPlanOptions()}

	rec := httptest.NewRecorder()
	h.PlanFleet(rec, httptest.NewRequest(http.MethodPost, "/plans/fleet", nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res dto.PlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, []int{1, 0}, res.PriorityOrder)
	require.Len(t, res.Routes, 1)
	// route begins at the first cluster member, not the closest one
	assert.Equal(t, []dto.StopResponse{{ID: 2, X: 3, Y: 4}, {ID: 3, X: 1, Y: 0}}, res.Routes[0].Stops)
}

func TestPlanFleetWithoutStore(t *testing.T) {
	h := &PlanHandler{Options: services.DefaultPlanOptions()}

	rec := httptest.NewRecorder()
	h.PlanFleet(rec, httptest.NewRequest(http.MethodPost, "/plans/fleet", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	h.Fleet = &stubFleet{err: errors.New("db down")}
	rec = httptest.NewRecorder()
	h.PlanFleet(rec, httptest.NewRequest(http.MethodPost, "/plans/fleet", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestFleetList(t *testing.T) {
	fleet := &stubFleet{req: &domain.PlanRequest{
		Drivers:   []domain.Coordinates{{X: 0, Y: 0}},
		Locations: []domain.Coordinates{{X: 3, Y: 4}},
		Profits:   []int{7},
	}}
	h := &FleetHandler{Repo: fleet}

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/fleet", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.FleetResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, []dto.CoordinatesRequest{{X: 0, Y: 0}}, res.Drivers)
	assert.Equal(t, []dto.LocationResponse{{X: 3, Y: 4, Profit: 7}}, res.Locations)
}

func TestPlanHandlerLimits(t *testing.T) {
	h := &PlanHandler{Options: services.DefaultPlanOptions(), MaxLocations: 3}

	body := `{"drivers":[{"x":0,"y":0}],"locations":[{"x":1,"y":1},{"x":2,"y":2},{"x":3,"y":3},{"x":4,"y":4}],"profits":[1,1,1,1]}`
	rec, _ := postPlan(t, h.Plan, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "exceed limit 3")

	h = &PlanHandler{Options: services.DefaultPlanOptions(), MaxBodyBytes: 64}
	rec, _ = postPlan(t, h.Plan, scenarioBody)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestPlanFleetHonorsLocationLimit(t *testing.T) {
	fleet := &stubFleet{req: &domain.PlanRequest{
		Drivers:   []domain.Coordinates{{X: 0, Y: 0}},
		Locations: []domain.Coordinates{{X: 1, Y: 1}, {X: 2, Y: 2}},
		Profits:   []int{1, 1},
	}}
	h := &PlanHandler{Fleet: fleet, Options: services.DefaultPlanOptions(), MaxLocations: 1}

	rec := httptest.NewRecorder()
	h.PlanFleet(rec, httptest.NewRequest(http.MethodPost, "/plans/fleet", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWriteJSONUnencodableValue(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(rec, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusOK, map[string]float64{"d": math.Inf(1)})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
}
