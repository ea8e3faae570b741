package ports

import (
	"context"
	"route-planner-service/internal/domain"
)

// Port: renders a finished plan.
type OutputSink interface {
	WritePlan(ctx context.Context, plan *domain.Plan) error
}
