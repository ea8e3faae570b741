package domain

import "errors"

var (
	// Input shape or values rejected at the boundary.
	ErrInvalidInput = errors.New("invalid input")

	// numDrivers <= 0, numLocations <= 0 or numDrivers > numLocations.
	ErrInvalidInputSize = errors.New("invalid input size")

	// A cluster became empty and could not be re-seeded.
	ErrDegenerateClustering = errors.New("degenerate clustering")

	// Clustering did not stabilize within the iteration cap.
	ErrNonConvergence = errors.New("clustering did not converge")

	ErrRouteAlreadyAssigned = errors.New("route already assigned")

	ErrNotFound = errors.New("not found")
)
