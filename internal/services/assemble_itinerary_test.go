package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pravin4/trip-planner/internal/domain"
)

func fourDayPlans() []domain.DayPlan {
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	days := make([]domain.DayPlan, 4)
	for i := range days {
		days[i] = domain.DayPlan{Date: start.AddDate(0, 0, i)}
	}
	days[2].Activities = []domain.Activity{{Name: "Black Sands Beach", Cost: 0}}
	return days
}

func roundTripLogistics() *domain.TripLogistics {
	return &domain.TripLogistics{
		Departure: &domain.JourneyLeg{Leg: domain.Leg{Mode: domain.ModeDrive, DistanceKm: 354}},
		Return:    &domain.JourneyLeg{Leg: domain.Leg{Mode: domain.ModeDrive, DistanceKm: 354}},
	}
}

func TestAssembleItineraryDayNumbering(t *testing.T) {
	it := AssembleItinerary(AssembleParams{
		StartingPoint: "San Jose",
		Destination:   "Shelter Cove",
		DayPlans:      fourDayPlans(),
		Logistics:     roundTripLogistics(),
		GroupSize:     2,
	})

	require.Len(t, it.DayPlans, 4)
	for i, d := range it.DayPlans {
		assert.Equal(t, i+1, d.DayNumber)
	}
}

func TestAssembleItineraryDayTypes(t *testing.T) {
	it := AssembleItinerary(AssembleParams{
		DayPlans:  fourDayPlans(),
		Logistics: roundTripLogistics(),
		GroupSize: 2,
	})

	require.Len(t, it.DayPlans, 4)
	assert.Equal(t, domain.DayTypeDeparture, it.DayPlans[0].DayType)
	assert.Equal(t, domain.DayTypeArrival, it.DayPlans[1].DayType)
	assert.Equal(t, domain.DayTypeExploration, it.DayPlans[2].DayType)
	assert.Equal(t, domain.DayTypeReturn, it.DayPlans[3].DayType)
}

func TestAssembleItineraryDayTypesWithoutLogistics(t *testing.T) {
	it := AssembleItinerary(AssembleParams{
		DayPlans:  fourDayPlans(),
		GroupSize: 2,
	})

	assert.Equal(t, domain.DayTypeArrival, it.DayPlans[0].DayType)
	assert.Equal(t, domain.DayTypeExploration, it.DayPlans[1].DayType)
	assert.Equal(t, domain.DayTypeExploration, it.DayPlans[3].DayType)
}

func TestAssembleItineraryTransportOnlyDayIsTravel(t *testing.T) {
	days := fourDayPlans()
	days[1].Transportation = []domain.TransportSegment{
		{From: "San Jose", To: "Shelter Cove", Mode: domain.ModeDrive},
	}

	it := AssembleItinerary(AssembleParams{
		DayPlans:  days,
		Logistics: roundTripLogistics(),
		GroupSize: 2,
	})

	assert.Equal(t, domain.DayTypeTravel, it.DayPlans[1].DayType)
}

func TestAssembleItineraryMergesDayRecordCosts(t *testing.T) {
	days := fourDayPlans()
	days[1].Activities = []domain.Activity{{Name: "Aquarium", Cost: 60}}
	days[1].Restaurants = []domain.Restaurant{{Name: "Fish House", CostPerPerson: 30}}
	days[1].Accommodations = []domain.Accommodation{{Name: "Inn", PricePerNight: 140}}

	base := domain.CostBreakdown{Transportation: 100, Meals: 50, Activities: 10}

	it := AssembleItinerary(AssembleParams{
		DayPlans:  days,
		Totals:    base,
		GroupSize: 2,
	})

	assert.InDelta(t, 100, it.CostBreakdown.Transportation, 1e-9)
	assert.InDelta(t, 70, it.CostBreakdown.Activities, 1e-9) // 10 + 60
	assert.InDelta(t, 110, it.CostBreakdown.Meals, 1e-9)     // 50 + 30*2
	assert.InDelta(t, 140, it.CostBreakdown.Accommodations, 1e-9)
	assert.InDelta(t, it.CostBreakdown.Total(), it.TotalCost, 1e-9)
}

func TestAssembleItineraryOverBudgetIsNotFatal(t *testing.T) {
	it := AssembleItinerary(AssembleParams{
		DayPlans:    fourDayPlans(),
		Totals:      domain.CostBreakdown{Transportation: 5000},
		TotalBudget: 1000,
		GroupSize:   2,
	})

	assert.Equal(t, 1000.0, it.TotalBudget)
	assert.Greater(t, it.TotalCost, it.TotalBudget)
	assert.Contains(t, it.BudgetNotes, "Estimated cost exceeds the trip budget")
}

func TestAssembleItineraryEmptyDays(t *testing.T) {
	it := AssembleItinerary(AssembleParams{
		StartingPoint: "A",
		Destination:   "B",
	})

	assert.Empty(t, it.DayPlans)
	assert.Zero(t, it.TotalCost)
}
