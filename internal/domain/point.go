package domain

// Dense identifier shared by driver start points and delivery locations.
// Valid ids are 1..V, where V is the number of points in the Arena.
type PointID int

// Immutable planar coordinates with an identity in the shared id space.
type Point struct {
	ID PointID
	X  float64
	Y  float64
}
