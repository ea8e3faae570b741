package ports

import (
	"context"
	"route-planner-service/internal/domain"
)

// Port: supplies the planning input (console, file, database, API request).
type InputProvider interface {
	// Return one planning request. Shape validation happens after this call.
	ReadRequest(ctx context.Context) (*domain.PlanRequest, error)
}
