package services

import (
	"route-planner-service/internal/domain"
)

// Build a visiting order over one cluster using a greedy nearest-neighbor algorithm.
//
// The route starts at the first member and repeatedly moves to the unvisited
// member with the smallest shortest-path distance from the current endpoint.
// Ties go to the member found first, which is the lowest id because members
// keep input order. Every member is visited exactly once. It does not attempt
// global route optimization.
func NearestNeighborRoute(members []domain.Point, distances *domain.DistanceMatrix) []domain.PointID {
	if len(members) == 0 {
		return []domain.PointID{}
	}

	visited := make([]bool, len(members))
	route := make([]domain.PointID, 0, len(members))

	current := members[0]
	visited[0] = true
	route = append(route, current.ID)

	for len(route) < len(members) {
		nearest := -1
		minDist := 0.0

		for j, m := range members {
			if visited[j] {
				continue
			}
			d := distances.At(current.ID, m.ID)
			// nearest == -1 also admits +Inf when nothing finite is left.
			if nearest == -1 || d < minDist {
				minDist = d
				nearest = j
			}
		}

		visited[nearest] = true
		current = members[nearest]
		route = append(route, current.ID)
	}

	return route
}

// RouteDistance sums shortest-path legs from start through every stop in order.
func RouteDistance(start domain.PointID, stops []domain.PointID, distances *domain.DistanceMatrix) float64 {
	total := 0.0
	prev := start
	for _, s := range stops {
		total += distances.At(prev, s)
		prev = s
	}
	return total
}
