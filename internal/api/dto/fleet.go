package dto

type LocationResponse struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Profit int     `json:"profit"`
}

type FleetResponse struct {
	Drivers   []CoordinatesRequest `json:"drivers"`
	Locations []LocationResponse   `json:"locations"`
}
