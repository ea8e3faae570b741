package domain

import "fmt"

// Delivery driver holding a start point and a route that is assigned once.
type Driver struct {
	ID    int
	Start PointID
	route []PointID
	set   bool
}

func NewDriver(id int, start PointID) *Driver {
	return &Driver{ID: id, Start: start}
}

// AssignRoute stores the visiting order. A second call fails with
// ErrRouteAlreadyAssigned and leaves the first route in place.
func (d *Driver) AssignRoute(route []PointID) error {
	if d.set {
		return fmt.Errorf("assign route: driver %d: %w", d.ID, ErrRouteAlreadyAssigned)
	}
	d.route = append([]PointID(nil), route...)
	d.set = true
	return nil
}

// Route returns a copy of the assigned route (nil before assignment).
func (d *Driver) Route() []PointID {
	if !d.set {
		return nil
	}
	return append([]PointID(nil), d.route...)
}

func (d *Driver) HasRoute() bool { return d.set }
