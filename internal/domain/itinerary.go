package domain

import "time"

// Classification of a single itinerary day.
type DayType string

const (
	DayTypeDeparture   DayType = "departure"
	DayTypeTravel      DayType = "travel"
	DayTypeArrival     DayType = "arrival"
	DayTypeReturn      DayType = "return"
	DayTypeExploration DayType = "exploration"
)

// Loosely-typed day content supplied by external research collaborators.
// The planner merges these records; it never generates them.
type Activity struct {
	Name          string
	Category      string
	DurationHours float64
	Cost          float64
}

type Restaurant struct {
	Name          string
	Cuisine       string
	CostPerPerson float64
}

type Accommodation struct {
	Name          string
	Kind          string
	PricePerNight float64
}

type TransportSegment struct {
	From     string
	To       string
	Mode     Mode
	Distance float64
	Notes    string
}

// DayPlan is one calendar day's worth of itinerary content.
type DayPlan struct {
	DayNumber      int
	Date           time.Time
	DayType        DayType
	Activities     []Activity
	Restaurants    []Restaurant
	Accommodations []Accommodation
	Transportation []TransportSegment
	Notes          string
}

// JourneyLeg bundles a classified leg with its planned stops and cost.
type JourneyLeg struct {
	Leg   Leg
	Stops []Waypoint
	Cost  CostBreakdown
	Notes string
}

// TripLogistics carries the departure and return journey legs.
type TripLogistics struct {
	Departure *JourneyLeg
	Return    *JourneyLeg
	Notes     string
}

// Itinerary is the finished plan returned to the caller. It is constructed
// once per planning request and read-only thereafter.
type Itinerary struct {
	StartingPoint string
	Destination   string
	DayPlans      []DayPlan
	CostBreakdown CostBreakdown
	TotalCost     float64
	TotalBudget   float64
	TripLogistics *TripLogistics
	BudgetNotes   []string
}
