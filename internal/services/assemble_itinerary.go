package services

import (
	"github.com/pravin4/trip-planner/internal/domain"
)

// Inputs for itinerary assembly. DayPlans arrive in calendar order with
// content (possibly empty) supplied by external collaborators; journey legs
// are optional.
type AssembleParams struct {
	StartingPoint string
	Destination   string
	DayPlans      []domain.DayPlan
	Logistics     *domain.TripLogistics
	// Base totals from the cost aggregation, before day-plan record costs
	// are reconciled in.
	Totals      domain.CostBreakdown
	TotalBudget float64
	GroupSize   int
}

// AssembleItinerary merges day plans, journey legs and cost totals into the
// final itinerary. Day numbering is a strict 1-based sequence with no gaps;
// day types follow from position and content:
//
//   - first day is departure when a departure leg exists
//   - last day is return when a return leg exists
//   - days with only transportation content are travel days
//   - the first day without a departure leg, or the day right after the
//     departure, is arrival
//   - everything else is exploration
//
// Day-plan record costs are added into the totals per category, never
// overwritten. Exceeding the budget is carried forward, not an error.
func AssembleItinerary(p AssembleParams) domain.Itinerary {
	group := p.GroupSize
	if group < 1 {
		group = 1
	}

	hasDeparture := p.Logistics != nil && p.Logistics.Departure != nil
	hasReturn := p.Logistics != nil && p.Logistics.Return != nil

	days := make([]domain.DayPlan, len(p.DayPlans))
	copy(days, p.DayPlans)

	for i := range days {
		days[i].DayNumber = i + 1
		days[i].DayType = classifyDay(days, i, hasDeparture, hasReturn)
	}

	totals := p.Totals
	for _, d := range days {
		for _, a := range d.Activities {
			totals.Activities += a.Cost
		}
		for _, r := range d.Restaurants {
			totals.Meals += r.CostPerPerson * float64(group)
		}
		for _, acc := range d.Accommodations {
			totals.Accommodations += acc.PricePerNight
		}
	}

	return domain.Itinerary{
		StartingPoint: p.StartingPoint,
		Destination:   p.Destination,
		DayPlans:      days,
		CostBreakdown: totals,
		TotalCost:     totals.Total(),
		TotalBudget:   p.TotalBudget,
		TripLogistics: p.Logistics,
		BudgetNotes:   BudgetNotes(totals, p.TotalBudget),
	}
}

func classifyDay(days []domain.DayPlan, i int, hasDeparture, hasReturn bool) domain.DayType {
	last := len(days) - 1

	if i == 0 && hasDeparture {
		return domain.DayTypeDeparture
	}
	if i == last && hasReturn && i > 0 {
		return domain.DayTypeReturn
	}

	d := days[i]
	hasExploration := len(d.Activities) > 0 || len(d.Restaurants) > 0
	if !hasExploration && len(d.Transportation) > 0 {
		return domain.DayTypeTravel
	}

	if (i == 0 && !hasDeparture) || (i == 1 && hasDeparture) {
		return domain.DayTypeArrival
	}

	return domain.DayTypeExploration
}
