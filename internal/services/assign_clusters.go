package services

import (
	"errors"
	"fmt"
	"route-planner-service/internal/domain"
	"route-planner-service/internal/ports"
)

// AssignClustersToDrivers pairs unlabeled k-means clusters with drivers.
//
// Drivers pick in input order; each takes the unclaimed cluster whose centroid
// is nearest to its start point, ties going to the lower cluster index. The
// result is index-aligned with starts. This is a greedy matching, not an
// optimal one, chosen for deterministic and predictable output.
func AssignClustersToDrivers(
	starts []domain.Point,
	clusters []domain.Cluster,
	model ports.DistanceModel,
) ([]domain.Cluster, error) {
	if len(starts) == 0 {
		return nil, errors.New("assign clusters: driver list must not be empty")
	}
	if len(starts) != len(clusters) {
		return nil, fmt.Errorf(
			"assign clusters: drivers=%d clusters=%d: %w",
			len(starts), len(clusters), domain.ErrInvalidInputSize,
		)
	}

	claimed := make([]bool, len(clusters))
	out := make([]domain.Cluster, len(starts))

	for d, start := range starts {
		best := -1
		bestDist := 0.0
		for c := range clusters {
			if claimed[c] {
				continue
			}
			dist := model.Distance(start, centroidPoint(clusters[c].Centroid))
			if best == -1 || dist < bestDist {
				best = c
				bestDist = dist
			}
		}

		claimed[best] = true
		out[d] = clusters[best]
	}

	return out, nil
}
