package ports

import (
	"context"
	"route-planner-service/internal/domain"
)

// Optional result cache keyed by a request fingerprint.
type PlanCache interface {
	// Return domain.ErrNotFound on a miss.
	Get(ctx context.Context, key string) (*domain.Plan, error)
	Put(ctx context.Context, key string, plan *domain.Plan) error
}
