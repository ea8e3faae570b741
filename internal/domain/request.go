package domain

import "math"

// Raw input coordinates before ids are assigned.
type Coordinates struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// MaxCoordinate bounds the magnitude of accepted coordinates. Distances and
// route sums between points inside the bound stay finite.
const MaxCoordinate = 1e150

// Return true when both coordinates are finite numbers.
func (c Coordinates) Finite() bool {
	return !math.IsNaN(c.X) && !math.IsInf(c.X, 0) && !math.IsNaN(c.Y) && !math.IsInf(c.Y, 0)
}

// InBounds reports whether c is finite and within MaxCoordinate on both axes.
func (c Coordinates) InBounds() bool {
	return c.Finite() && math.Abs(c.X) <= MaxCoordinate && math.Abs(c.Y) <= MaxCoordinate
}

// PlanRequest is the input contract supplied by an InputProvider.
// Profits are index-aligned with Locations.
type PlanRequest struct {
	Drivers   []Coordinates `json:"drivers" yaml:"drivers"`
	Locations []Coordinates `json:"locations" yaml:"locations"`
	Profits   []int         `json:"profits" yaml:"profits"`
}

func (r *PlanRequest) NumDrivers() int { return len(r.Drivers) }

func (r *PlanRequest) NumLocations() int { return len(r.Locations) }
