package dto

type NamedStopResponse struct {
	Name       string             `json:"name"`
	Coordinate CoordinateResponse `json:"coordinate"`
	PositionKm float64            `json:"position_km"`
}

type NamedRouteResponse struct {
	OriginContains      []string            `json:"origin_contains"`
	DestinationContains []string            `json:"destination_contains"`
	Stops               []NamedStopResponse `json:"stops"`
}

type ListRoutesResponse struct {
	Routes []NamedRouteResponse `json:"routes"`
}
