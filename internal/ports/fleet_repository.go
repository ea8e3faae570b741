package ports

import (
	"context"
	"route-planner-service/internal/domain"
)

// Port: a boundary for retrieving driver starts and delivery locations from a data source.
type FleetRepository interface {
	// Retrieve driver start points in driver order.
	ListDrivers(ctx context.Context) ([]domain.Coordinates, error)
	// Retrieve delivery locations and their profit scores in location order.
	ListLocations(ctx context.Context) ([]domain.Coordinates, []int, error)
}
