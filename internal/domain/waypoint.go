package domain

// Kind of intermediate stop along a leg.
type WaypointKind string

const (
	KindRestStop       WaypointKind = "rest_stop"
	KindAttractionStop WaypointKind = "attraction_stop"
	KindNamedCityStop  WaypointKind = "named_city_stop"
)

// Waypoint is an intermediate stop inserted along a Leg.
// SequenceIndex is unique within a leg and increases monotonically with
// distance from the origin.
type Waypoint struct {
	Coordinate    Coordinate
	Label         string
	Kind          WaypointKind
	SequenceIndex int

	// Along-route distance used for ordering and deduplication.
	DistanceFromOriginKm float64
}
