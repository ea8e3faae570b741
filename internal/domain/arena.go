package domain

import "fmt"

// Arena owns every Point of a single planning run.
//
// Driver start points are appended first, then delivery locations, so ids
// follow input order: drivers take 1..D and locations D+1..D+L. Drivers and
// clusters refer to points by id instead of copying coordinates.
type Arena struct {
	points       []Point
	numDrivers   int
	numLocations int
}

// NewArena assigns ids to driver starts and locations in input order.
func NewArena(starts []Coordinates, locations []Coordinates) *Arena {
	a := &Arena{
		points:       make([]Point, 0, len(starts)+len(locations)),
		numDrivers:   len(starts),
		numLocations: len(locations),
	}
	for _, c := range starts {
		a.points = append(a.points, Point{ID: PointID(len(a.points) + 1), X: c.X, Y: c.Y})
	}
	for _, c := range locations {
		a.points = append(a.points, Point{ID: PointID(len(a.points) + 1), X: c.X, Y: c.Y})
	}
	return a
}

// Size is V, the number of points in the id space.
func (a *Arena) Size() int { return len(a.points) }

func (a *Arena) NumDrivers() int { return a.numDrivers }

func (a *Arena) NumLocations() int { return a.numLocations }

// At returns the point with the given id. It panics on an id outside 1..V,
// which can only come from a programming error.
func (a *Arena) At(id PointID) Point {
	if id < 1 || int(id) > len(a.points) {
		panic(fmt.Sprintf("arena: point id %d out of range [1, %d]", id, len(a.points)))
	}
	return a.points[id-1]
}

// DriverStart returns the start point of the i-th driver (0-based input order).
func (a *Arena) DriverStart(i int) Point {
	return a.points[i]
}

// Locations returns the delivery locations in input order.
func (a *Arena) Locations() []Point {
	return a.points[a.numDrivers:]
}

// Resolve returns the arena points for ids, preserving order.
func (a *Arena) Resolve(ids []PointID) []Point {
	out := make([]Point, 0, len(ids))
	for _, id := range ids {
		out = append(out, a.At(id))
	}
	return out
}
