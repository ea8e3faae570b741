package distance

import (
	"math"
	"route-planner-service/internal/domain"
)

// EuclideanModel measures straight-line distance in the plane.
type EuclideanModel struct{}

func NewEuclideanModel() EuclideanModel { return EuclideanModel{} }

func (EuclideanModel) Distance(a, b domain.Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
