package ports

import "route-planner-service/internal/domain"

// Contract for computing the direct distance between two points.
// Implementations must be pure, symmetric and zero for identical coordinates.
type DistanceModel interface {
	Distance(a, b domain.Point) float64
}
