package services

import (
	"fmt"
	"math"
	"route-planner-service/internal/domain"
	"route-planner-service/internal/ports"
	"slices"
)

// What to do when an assignment step leaves a cluster without members.
type EmptyClusterPolicy int

const (
	// Move the point farthest from its own centroid into the empty cluster.
	EmptyClusterReseed EmptyClusterPolicy = iota
	// Stop with domain.ErrDegenerateClustering.
	EmptyClusterFail
)

func ParseEmptyClusterPolicy(s string) (EmptyClusterPolicy, error) {
	switch s {
	case "", "reseed":
		return EmptyClusterReseed, nil
	case "fail":
		return EmptyClusterFail, nil
	}
	return 0, fmt.Errorf("parse empty cluster policy %q: %w", s, domain.ErrInvalidInput)
}

type ClusterOptions struct {
	// Protective cap on assignment+update iterations.
	MaxIterations int
	// A centroid coordinate moving by more than Epsilon counts as a change.
	Epsilon     float64
	EmptyPolicy EmptyClusterPolicy
}

func DefaultClusterOptions() ClusterOptions {
	return ClusterOptions{
		MaxIterations: 100,
		Epsilon:       1e-9,
		EmptyPolicy:   EmptyClusterReseed,
	}
}

type ClusterResult struct {
	Clusters   []domain.Cluster
	Iterations int
}

// ClusterLocations partitions locations into k clusters with k-means.
//
// The first k locations seed the centroids. Each iteration assigns every
// location to its nearest centroid (ties go to the lower centroid index) and
// moves each centroid to the mean of its members. Iteration stops once no
// centroid moves by more than opts.Epsilon. Members keep input order.
func ClusterLocations(
	locations []domain.Point,
	k int,
	model ports.DistanceModel,
	opts ClusterOptions,
) (*ClusterResult, error) {
	if k <= 0 || len(locations) == 0 || k > len(locations) {
		return nil, fmt.Errorf(
			"cluster locations: k=%d locations=%d: %w",
			k, len(locations), domain.ErrInvalidInputSize,
		)
	}

	defaults := DefaultClusterOptions()
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = defaults.MaxIterations
	}
	if opts.Epsilon <= 0 {
		opts.Epsilon = defaults.Epsilon
	}

	centroids := make([]domain.Coordinates, k)
	for i := 0; i < k; i++ {
		centroids[i] = domain.Coordinates{X: locations[i].X, Y: locations[i].Y}
	}

	for it := 1; it <= opts.MaxIterations; it++ {
		members, next, changed, err := clusterStep(locations, centroids, model, opts)
		if err != nil {
			return nil, fmt.Errorf("cluster locations: iteration %d: %w", it, err)
		}
		centroids = next

		if !changed {
			clusters := make([]domain.Cluster, k)
			for c := range clusters {
				ids := make([]domain.PointID, 0, len(members[c]))
				for _, idx := range members[c] {
					ids = append(ids, locations[idx].ID)
				}
				clusters[c] = domain.Cluster{Centroid: centroids[c], Members: ids}
			}
			return &ClusterResult{Clusters: clusters, Iterations: it}, nil
		}
	}

	return nil, fmt.Errorf(
		"cluster locations: no stable centroids after %d iterations: %w",
		opts.MaxIterations, domain.ErrNonConvergence,
	)
}

// clusterStep runs one assignment+update pass. members holds indices into
// locations, in input order. changed reports whether any centroid moved.
func clusterStep(
	locations []domain.Point,
	centroids []domain.Coordinates,
	model ports.DistanceModel,
	opts ClusterOptions,
) (members [][]int, next []domain.Coordinates, changed bool, err error) {
	k := len(centroids)
	members = make([][]int, k)

	for idx, loc := range locations {
		nearest := 0
		minDist := model.Distance(loc, centroidPoint(centroids[0]))
		for c := 1; c < k; c++ {
			if d := model.Distance(loc, centroidPoint(centroids[c])); d < minDist {
				minDist = d
				nearest = c
			}
		}
		members[nearest] = append(members[nearest], idx)
	}

	for c := 0; c < k; c++ {
		if len(members[c]) > 0 {
			continue
		}
		if opts.EmptyPolicy == EmptyClusterFail {
			return nil, nil, false, fmt.Errorf("cluster %d has no members: %w", c, domain.ErrDegenerateClustering)
		}
		if !reseedEmpty(members, c, locations, centroids, model) {
			return nil, nil, false, fmt.Errorf("cluster %d has no members and no donor: %w", c, domain.ErrDegenerateClustering)
		}
	}

	next = make([]domain.Coordinates, k)
	for c := 0; c < k; c++ {
		var sumX, sumY float64
		for _, idx := range members[c] {
			sumX += locations[idx].X
			sumY += locations[idx].Y
		}
		n := float64(len(members[c]))
		next[c] = domain.Coordinates{X: sumX / n, Y: sumY / n}

		if math.Abs(next[c].X-centroids[c].X) > opts.Epsilon || math.Abs(next[c].Y-centroids[c].Y) > opts.Epsilon {
			changed = true
		}
	}

	return members, next, changed, nil
}

// reseedEmpty moves into cluster empty the member farthest from its own
// centroid, taken only from clusters that keep at least one member.
func reseedEmpty(
	members [][]int,
	empty int,
	locations []domain.Point,
	centroids []domain.Coordinates,
	model ports.DistanceModel,
) bool {
	donor, pos := -1, -1
	farthest := -1.0

	for c := range members {
		if len(members[c]) < 2 {
			continue
		}
		cp := centroidPoint(centroids[c])
		for p, idx := range members[c] {
			if d := model.Distance(locations[idx], cp); d > farthest {
				farthest = d
				donor, pos = c, p
			}
		}
	}
	if donor < 0 {
		return false
	}

	moved := members[donor][pos]
	members[donor] = slices.Delete(members[donor], pos, pos+1)
	members[empty] = []int{moved}
	return true
}

func centroidPoint(c domain.Coordinates) domain.Point {
	return domain.Point{X: c.X, Y: c.Y}
}
