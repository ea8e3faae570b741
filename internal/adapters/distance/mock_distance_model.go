package distance

import (
	"route-planner-service/internal/domain"
)

type MockPair struct {
	From, To domain.PointID
	Distance float64
}

// MockDistanceModel returns fixed distances per id pair and falls back to
// Euclidean distance for pairs it does not know. Pairs are symmetric.
type MockDistanceModel struct {
	m        map[[2]domain.PointID]float64
	fallback EuclideanModel
}

func NewMockDistanceModel(pairs []MockPair) *MockDistanceModel {
	m := make(map[[2]domain.PointID]float64, 2*len(pairs))
	for _, p := range pairs {
		m[[2]domain.PointID{p.From, p.To}] = p.Distance
		m[[2]domain.PointID{p.To, p.From}] = p.Distance
	}
	return &MockDistanceModel{m: m}
}

func (p *MockDistanceModel) Distance(a, b domain.Point) float64 {
	if d, ok := p.m[[2]domain.PointID{a.ID, b.ID}]; ok {
		return d
	}
	return p.fallback.Distance(a, b)
}
