package domain

import "time"

// Represents the planned visiting order for a single driver.
// Stops are delivery locations only; Distance additionally includes the leg
// from the driver's start point to the first stop.
type DriverRoute struct {
	DriverID int
	Start    Point
	Stops    []Point
	Distance float64
}

// Represents the output of one planning run.
// PriorityOrder holds 0-based location indices sorted by descending profit and
// is independent of the routes.
type Plan struct {
	PlanID        string
	CreatedAt     time.Time
	Routes        []DriverRoute
	PriorityOrder []int
	Iterations    int
}
