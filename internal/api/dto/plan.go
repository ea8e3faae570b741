package dto

import "time"

type CoordinatesRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type PlanRequest struct {
	Drivers   []CoordinatesRequest `json:"drivers"`
	Locations []CoordinatesRequest `json:"locations"`
	Profits   []int                `json:"profits"`
}

type StopResponse struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

type RouteResponse struct {
	DriverID int            `json:"driver_id"`
	Start    StopResponse   `json:"start"`
	Stops    []StopResponse `json:"stops"`
	Distance float64        `json:"distance"`
}

type PlanResponse struct {
	PlanID        string          `json:"plan_id"`
	CreatedAt     time.Time       `json:"created_at"`
	Iterations    int             `json:"iterations"`
	Cached        bool            `json:"cached"`
	Routes        []RouteResponse `json:"routes"`
	PriorityOrder []int           `json:"priority_order"`
}
