package ports

import (
	"context"
	"time"

	"github.com/pravin4/trip-planner/internal/domain"
)

// Input for researching one exploration day at the destination.
type DayResearchRequest struct {
	Destination string
	Date        time.Time
	DayNumber   int
	BudgetLevel domain.BudgetLevel
	GroupSize   int
}

// Raw day content produced by a research collaborator. The planner merges
// this content into the itinerary; it never generates it.
type DayContent struct {
	Activities     []domain.Activity
	Restaurants    []domain.Restaurant
	Accommodations []domain.Accommodation
	Notes          string
}

// Contract for the external research/planning collaborator that fills
// exploration days with activities, restaurants and accommodations.
type DayPlanProvider interface {
	// ResearchDay returns content for a single day. A provider that has
	// nothing usable returns an error wrapping domain.ErrMissingDayPlanData;
	// the planner recovers by substituting a free-time day.
	ResearchDay(ctx context.Context, req DayResearchRequest) (DayContent, error)
}
