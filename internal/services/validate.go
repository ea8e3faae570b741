package services

import (
	"errors"
	"fmt"
	"route-planner-service/internal/domain"
)

// ValidateRequest checks the input shape before any planning work starts.
func ValidateRequest(req *domain.PlanRequest) error {
	if req == nil {
		return fmt.Errorf("validate request: request is nil: %w", domain.ErrInvalidInput)
	}

	nd, nl := req.NumDrivers(), req.NumLocations()
	if nd <= 0 {
		return fmt.Errorf("validate request: numDrivers=%d must be positive: %w", nd, domain.ErrInvalidInputSize)
	}
	if nl <= 0 {
		return fmt.Errorf("validate request: numLocations=%d must be positive: %w", nl, domain.ErrInvalidInputSize)
	}
	if nd > nl {
		return fmt.Errorf(
			"validate request: numDrivers=%d exceeds numLocations=%d: %w",
			nd, nl, domain.ErrInvalidInputSize,
		)
	}

	if len(req.Profits) != nl {
		return fmt.Errorf(
			"validate request: profits=%d must match numLocations=%d: %w",
			len(req.Profits), nl, domain.ErrInvalidInput,
		)
	}

	var errs []error
	for i, p := range req.Profits {
		if p < 0 {
			errs = append(errs, fmt.Errorf("profit at index %d is negative: %d", i, p))
		}
	}
	for i, c := range req.Drivers {
		if !c.InBounds() {
			errs = append(errs, fmt.Errorf("driver %d coordinates (%v, %v) are not finite or exceed %g", i+1, c.X, c.Y, domain.MaxCoordinate))
		}
	}
	for i, c := range req.Locations {
		if !c.InBounds() {
			errs = append(errs, fmt.Errorf("location %d coordinates (%v, %v) are not finite or exceed %g", i+1, c.X, c.Y, domain.MaxCoordinate))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("validate request: %w: %w", domain.ErrInvalidInput, errors.Join(errs...))
	}

	return nil
}
