package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pravin4/trip-planner/internal/domain"
)

func TestEstimateDriveLeg(t *testing.T) {
	tables := DefaultCostTables()

	b := tables.Estimate(CostParams{
		Leg: domain.Leg{Mode: domain.ModeDrive, DistanceKm: 400},
		Stops: []domain.Waypoint{
			{Kind: domain.KindRestStop},
			{Kind: domain.KindRestStop},
			{Kind: domain.KindNamedCityStop},
		},
		GroupSize:   2,
		BudgetLevel: domain.BudgetLevelModerate,
		Nights:      2,
		Days:        3,
	})

	// 400 km * 0.15 + 3 stops * 7.50
	assert.InDelta(t, 82.50, b.Transportation, 1e-9)
	// 150/night * 2 nights * 1 room
	assert.InDelta(t, 300, b.Accommodations, 1e-9)
	assert.InDelta(t, 0, b.Activities, 1e-9)
	// 80/day/person * 2 people * 3 days
	assert.InDelta(t, 480, b.Meals, 1e-9)
	// 10% of the rest
	assert.InDelta(t, 86.25, b.Miscellaneous, 1e-9)
	assert.InDelta(t, b.Transportation+b.Accommodations+b.Activities+b.Meals+b.Miscellaneous, b.Total(), 1e-9)
}

func TestEstimateFlyLegAddsBookingFee(t *testing.T) {
	tables := DefaultCostTables()

	b := tables.Estimate(CostParams{
		Leg:         domain.Leg{Mode: domain.ModeFly, DistanceKm: 1000},
		GroupSize:   2,
		BudgetLevel: domain.BudgetLevelModerate,
	})

	// 1000 km * 0.50 + 45 booking fee, no stops on a fly leg
	assert.InDelta(t, 545, b.Transportation, 1e-9)
	assert.Zero(t, b.Accommodations)
	assert.Zero(t, b.Meals)
}

func TestEstimateBudgetMultiplierScalesTransport(t *testing.T) {
	tables := DefaultCostTables()
	leg := domain.Leg{Mode: domain.ModeDrive, DistanceKm: 100}

	budget := tables.Estimate(CostParams{Leg: leg, BudgetLevel: domain.BudgetLevelBudget})
	luxury := tables.Estimate(CostParams{Leg: leg, BudgetLevel: domain.BudgetLevelLuxury})

	assert.InDelta(t, 12, budget.Transportation, 1e-9)
	assert.InDelta(t, 22.5, luxury.Transportation, 1e-9)
}

func TestEstimateAccommodationRoomsRoundUp(t *testing.T) {
	tables := DefaultCostTables()

	// 3 people need 2 rooms at double occupancy.
	b := tables.Estimate(CostParams{
		Leg:         domain.Leg{Mode: domain.ModeDrive, DistanceKm: 10},
		GroupSize:   3,
		BudgetLevel: domain.BudgetLevelModerate,
		Nights:      1,
	})
	assert.InDelta(t, 300, b.Accommodations, 1e-9)
}

func TestEstimateAttractionStopsChargePerPerson(t *testing.T) {
	tables := DefaultCostTables()

	b := tables.Estimate(CostParams{
		Leg:         domain.Leg{Mode: domain.ModeDrive, DistanceKm: 10},
		Stops:       []domain.Waypoint{{Kind: domain.KindAttractionStop}},
		GroupSize:   4,
		BudgetLevel: domain.BudgetLevelModerate,
	})
	// 1 attraction * 25 * 4 people
	assert.InDelta(t, 100, b.Activities, 1e-9)
}

func TestEstimateExternalActivityCostFlowsThrough(t *testing.T) {
	tables := DefaultCostTables()

	b := tables.Estimate(CostParams{
		Leg:                  domain.Leg{Mode: domain.ModeDrive, DistanceKm: 10},
		BudgetLevel:          domain.BudgetLevelModerate,
		ExternalActivityCost: 120,
	})
	assert.InDelta(t, 120, b.Activities, 1e-9)
}

func TestEstimateZeroInputsZeroCost(t *testing.T) {
	tables := DefaultCostTables()
	b := tables.Estimate(CostParams{})
	assert.Zero(t, b.Total())
}

func TestBudgetNotesOverBudget(t *testing.T) {
	notes := BudgetNotes(domain.CostBreakdown{
		Transportation: 200,
		Accommodations: 600,
		Meals:          300,
	}, 1000)

	assert.Contains(t, notes, "Estimated cost exceeds the trip budget")
	assert.Contains(t, notes, "Consider more budget-friendly accommodation options")
	assert.Contains(t, notes, "Mix fine dining with casual restaurants to reduce meal costs")
}

func TestBudgetNotesUnderBudget(t *testing.T) {
	notes := BudgetNotes(domain.CostBreakdown{Transportation: 100}, 1000)
	assert.Equal(t, []string{"You have room to upgrade your experience"}, notes)
}

func TestBudgetNotesNoBudget(t *testing.T) {
	assert.Nil(t, BudgetNotes(domain.CostBreakdown{Transportation: 100}, 0))
}
