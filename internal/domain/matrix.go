package domain

import (
	"fmt"
	"math"
)

// DistanceMatrix is a V×V table indexed by PointID.
// Unset off-diagonal entries hold +Inf.
type DistanceMatrix struct {
	n    int
	data []float64
}

// NewDistanceMatrix returns an n×n matrix with a zero diagonal and +Inf elsewhere.
func NewDistanceMatrix(n int) *DistanceMatrix {
	m := &DistanceMatrix{n: n, data: make([]float64, n*n)}
	inf := math.Inf(1)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				m.data[i*n+j] = inf
			}
		}
	}
	return m
}

func (m *DistanceMatrix) Size() int { return m.n }

func (m *DistanceMatrix) index(a, b PointID) int {
	if a < 1 || int(a) > m.n || b < 1 || int(b) > m.n {
		panic(fmt.Sprintf("distance matrix: ids (%d, %d) out of range [1, %d]", a, b, m.n))
	}
	return int(a-1)*m.n + int(b-1)
}

func (m *DistanceMatrix) At(a, b PointID) float64 {
	return m.data[m.index(a, b)]
}

func (m *DistanceMatrix) Set(a, b PointID, d float64) {
	m.data[m.index(a, b)] = d
}

// SetSymmetric writes d to both (a, b) and (b, a).
func (m *DistanceMatrix) SetSymmetric(a, b PointID, d float64) {
	m.Set(a, b, d)
	m.Set(b, a, d)
}

// Raw exposes the row-major buffer (0-based indices) for in-place algorithms.
func (m *DistanceMatrix) Raw() []float64 { return m.data }
