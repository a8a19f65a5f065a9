package services

import (
	"math"

	"github.com/pravin4/trip-planner/internal/domain"
)

// Unit-cost tables feeding the cost aggregation. Injected so test fixtures
// can substitute their own pricing.
type CostTables struct {
	// Per-kilometer transportation rate by travel mode.
	ModeRatePerKm map[domain.Mode]float64
	// Budget-level multiplier applied to the transportation rate.
	BudgetMultiplier map[domain.BudgetLevel]float64
	// Tolls/parking incidental per rest or named-city stop.
	StopIncidental float64
	// Flat per-group booking fee for fly legs.
	FlyBookingFee float64
	// Nightly accommodation rate by budget level (double occupancy).
	NightlyRate map[domain.BudgetLevel]float64
	// Daily per-person meal allowance by budget level.
	DailyMealAllowance map[domain.BudgetLevel]float64
	// Flat per-attraction fee per person.
	AttractionFee float64
	// Buffer fraction applied on top of the four main categories.
	MiscellaneousRate float64
}

// DefaultCostTables returns USD pricing assumptions.
func DefaultCostTables() CostTables {
	return CostTables{
		ModeRatePerKm: map[domain.Mode]float64{
			domain.ModeDrive: 0.15,
			// 30% drive / 70% fly blend for mixed-mode legs.
			domain.ModeMultiModal: 0.395,
			domain.ModeFly:        0.50,
		},
		BudgetMultiplier: map[domain.BudgetLevel]float64{
			domain.BudgetLevelBudget:   0.8,
			domain.BudgetLevelModerate: 1.0,
			domain.BudgetLevelLuxury:   1.5,
		},
		StopIncidental: 7.50,
		FlyBookingFee:  45,
		NightlyRate: map[domain.BudgetLevel]float64{
			domain.BudgetLevelBudget:   80,
			domain.BudgetLevelModerate: 150,
			domain.BudgetLevelLuxury:   300,
		},
		DailyMealAllowance: map[domain.BudgetLevel]float64{
			domain.BudgetLevelBudget:   38,
			domain.BudgetLevelModerate: 80,
			domain.BudgetLevelLuxury:   160,
		},
		AttractionFee:     25,
		MiscellaneousRate: 0.10,
	}
}

// Inputs for one cost estimation. Absent inputs contribute zero; there are
// no error conditions.
type CostParams struct {
	Leg         domain.Leg
	Stops       []domain.Waypoint
	GroupSize   int
	BudgetLevel domain.BudgetLevel
	Nights      int
	Days        int
	// Activity costs supplied by external day plans, summed into the
	// activities category.
	ExternalActivityCost float64
}

// Estimate computes the category cost breakdown for a leg and its trip
// parameters. Values accumulate at full precision; rounding is left to the
// presentation layer.
func (t CostTables) Estimate(p CostParams) domain.CostBreakdown {
	group := p.GroupSize
	if group < 1 {
		group = 1
	}

	var b domain.CostBreakdown

	rate := t.ModeRatePerKm[p.Leg.Mode]
	multiplier := t.BudgetMultiplier[p.BudgetLevel]
	if multiplier == 0 {
		multiplier = 1.0
	}
	b.Transportation = rate * p.Leg.DistanceKm * multiplier

	attractionStops := 0
	for _, s := range p.Stops {
		switch s.Kind {
		case domain.KindRestStop, domain.KindNamedCityStop:
			b.Transportation += t.StopIncidental
		case domain.KindAttractionStop:
			attractionStops++
		}
	}
	if p.Leg.Mode == domain.ModeFly {
		b.Transportation += t.FlyBookingFee
	}

	if p.Nights > 0 {
		rooms := math.Ceil(float64(group) / 2)
		b.Accommodations = t.NightlyRate[p.BudgetLevel] * float64(p.Nights) * rooms
	}

	b.Activities = float64(attractionStops)*t.AttractionFee*float64(group) + p.ExternalActivityCost

	if p.Days > 0 {
		b.Meals = t.DailyMealAllowance[p.BudgetLevel] * float64(group) * float64(p.Days)
	}

	b.Miscellaneous = t.MiscellaneousRate * (b.Transportation + b.Accommodations + b.Activities + b.Meals)

	return b
}

// BudgetNotes produces advisory strings comparing total cost to the budget.
// Over-budget is a status for the caller to render, never a failure.
func BudgetNotes(breakdown domain.CostBreakdown, budget float64) []string {
	if budget <= 0 {
		return nil
	}

	total := breakdown.Total()
	var notes []string

	switch {
	case total > budget:
		notes = append(notes, "Estimated cost exceeds the trip budget")
		if breakdown.Accommodations > budget*0.4 {
			notes = append(notes, "Consider more budget-friendly accommodation options")
		}
		if breakdown.Activities > budget*0.3 {
			notes = append(notes, "Reduce paid activities or choose free alternatives")
		}
		if breakdown.Meals > budget*0.25 {
			notes = append(notes, "Mix fine dining with casual restaurants to reduce meal costs")
		}
	case total < budget*0.8:
		notes = append(notes, "You have room to upgrade your experience")
	}

	return notes
}
