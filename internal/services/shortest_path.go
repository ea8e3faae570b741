package services

import (
	"context"
	"fmt"
	"math"
	"route-planner-service/internal/domain"
)

// ShortestPaths relaxes m in place into all-pairs shortest distances
// (Floyd-Warshall).
//
// The intermediate vertex k is the outer loop so every k is fully settled
// before later pairs use it. +Inf entries are skipped, so unset pairs never
// produce overflow or NaN. Replacement happens only on strict improvement.
// ctx is checked once per intermediate vertex; a canceled run leaves m
// partially relaxed.
func ShortestPaths(ctx context.Context, m *domain.DistanceMatrix) error {
	n := m.Size()
	data := m.Raw()

	for k := 0; k < n; k++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("shortest paths: %w", err)
		}
		baseK := k * n
		for i := 0; i < n; i++ {
			ik := data[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			baseI := i * n
			for j := 0; j < n; j++ {
				kj := data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				if cand := ik + kj; cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}
	return nil
}
