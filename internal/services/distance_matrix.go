package services

import (
	"route-planner-service/internal/domain"
	"route-planner-service/internal/ports"
)

// BuildDistanceMatrix fills direct distances for every location pair and every
// driver-location pair. Driver-driver pairs stay at +Inf; the shortest-path
// relaxation connects them through locations.
func BuildDistanceMatrix(arena *domain.Arena, model ports.DistanceModel) *domain.DistanceMatrix {
	m := domain.NewDistanceMatrix(arena.Size())

	locations := arena.Locations()
	for i := 0; i < len(locations); i++ {
		for j := i + 1; j < len(locations); j++ {
			m.SetSymmetric(locations[i].ID, locations[j].ID, model.Distance(locations[i], locations[j]))
		}
	}

	for d := 0; d < arena.NumDrivers(); d++ {
		start := arena.DriverStart(d)
		for _, loc := range locations {
			m.SetSymmetric(start.ID, loc.ID, model.Distance(start, loc))
		}
	}

	return m
}
