package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/pravin4/trip-planner/internal/domain"
	"github.com/pravin4/trip-planner/internal/platform/obs"
	"github.com/pravin4/trip-planner/internal/ports"
)

// Cap on concurrent research calls per request.
const researchConcurrency = 4

type PlanTripRequest struct {
	Origin       string
	Destination  string
	StartDate    time.Time
	EndDate      time.Time
	GroupSize    int
	BudgetLevel  domain.BudgetLevel
	Budget       float64
	OverrideMode domain.Mode
}

// TripPlanner runs one planning request through the full pipeline:
// resolve locations, classify legs, plan stops, aggregate costs, assemble
// the itinerary. All state is request-scoped; the planner itself only holds
// immutable configuration and collaborator ports.
type TripPlanner struct {
	Resolver *LocationResolver
	Stops    *StopPlanner
	Costs    CostTables
	Places   ports.PlaceProvider
	Research ports.DayPlanProvider
}

// PlanTrip builds a complete itinerary. Research calls for independent days
// run concurrently, but results merge by day index so the itinerary is
// deterministic regardless of completion order.
func (p *TripPlanner) PlanTrip(ctx context.Context, req PlanTripRequest) (_ *domain.Itinerary, err error) {
	defer obs.Time(ctx, "planner.PlanTrip")(&err)

	totalDays := tripDays(req.StartDate, req.EndDate)
	if totalDays < 1 {
		return nil, fmt.Errorf("plan trip: end date %s before start date %s",
			req.EndDate.Format("2006-01-02"), req.StartDate.Format("2006-01-02"))
	}

	session := p.Resolver.Session()

	originCoord, err := session.Resolve(ctx, req.Origin)
	if err != nil {
		return nil, fmt.Errorf("plan trip: origin: %w", err)
	}
	destCoord, err := session.Resolve(ctx, req.Destination)
	if err != nil {
		return nil, fmt.Errorf("plan trip: destination: %w", err)
	}

	departureLeg, err := ClassifyLeg(originCoord, destCoord, req.OverrideMode)
	if err != nil {
		return nil, fmt.Errorf("plan trip: departure leg: %w", err)
	}
	returnLeg, err := ClassifyLeg(destCoord, originCoord, req.OverrideMode)
	if err != nil {
		return nil, fmt.Errorf("plan trip: return leg: %w", err)
	}

	departureStops := p.Stops.PlanStops(departureLeg, req.Origin, req.Destination)
	returnStops := p.Stops.PlanStops(returnLeg, req.Destination, req.Origin)
	DecorateStops(ctx, p.Places, departureStops)
	DecorateStops(ctx, p.Places, returnStops)

	dayContents := p.researchDays(ctx, req, totalDays)

	departureCost := p.Costs.Estimate(CostParams{
		Leg:         departureLeg,
		Stops:       departureStops,
		GroupSize:   req.GroupSize,
		BudgetLevel: req.BudgetLevel,
		Nights:      totalDays - 1,
		Days:        totalDays,
	})
	returnCost := p.Costs.Estimate(CostParams{
		Leg:         returnLeg,
		Stops:       returnStops,
		GroupSize:   req.GroupSize,
		BudgetLevel: req.BudgetLevel,
	})

	logistics := &domain.TripLogistics{
		Departure: &domain.JourneyLeg{
			Leg:   departureLeg,
			Stops: departureStops,
			Cost:  departureCost,
			Notes: journeyNotes(departureLeg, req.Origin, req.Destination),
		},
		Return: &domain.JourneyLeg{
			Leg:   returnLeg,
			Stops: returnStops,
			Cost:  returnCost,
			Notes: journeyNotes(returnLeg, req.Destination, req.Origin),
		},
	}

	dayPlans := make([]domain.DayPlan, totalDays)
	for i := 0; i < totalDays; i++ {
		content := dayContents[i]
		dayPlans[i] = domain.DayPlan{
			Date:           req.StartDate.AddDate(0, 0, i),
			Activities:     content.Activities,
			Restaurants:    content.Restaurants,
			Accommodations: content.Accommodations,
			Notes:          content.Notes,
		}
	}
	if len(dayPlans) > 0 {
		dayPlans[0].Transportation = append(dayPlans[0].Transportation, domain.TransportSegment{
			From:     req.Origin,
			To:       req.Destination,
			Mode:     departureLeg.Mode,
			Distance: departureLeg.DistanceKm,
			Notes:    logistics.Departure.Notes,
		})
		last := len(dayPlans) - 1
		dayPlans[last].Transportation = append(dayPlans[last].Transportation, domain.TransportSegment{
			From:     req.Destination,
			To:       req.Origin,
			Mode:     returnLeg.Mode,
			Distance: returnLeg.DistanceKm,
			Notes:    logistics.Return.Notes,
		})
	}

	itinerary := AssembleItinerary(AssembleParams{
		StartingPoint: req.Origin,
		Destination:   req.Destination,
		DayPlans:      dayPlans,
		Logistics:     logistics,
		Totals:        departureCost.Add(returnCost),
		TotalBudget:   req.Budget,
		GroupSize:     req.GroupSize,
	})

	return &itinerary, nil
}

// researchDays fans out one research call per day with bounded concurrency.
// Results land in a slice indexed by day so merge order never depends on
// scheduling. Any failure for a day degrades to a free-time placeholder.
func (p *TripPlanner) researchDays(ctx context.Context, req PlanTripRequest, totalDays int) []ports.DayContent {
	contents := make([]ports.DayContent, totalDays)

	if p.Research == nil {
		for i := range contents {
			contents[i] = freeTimeDay()
		}
		return contents
	}

	sem := make(chan struct{}, researchConcurrency)
	var wg sync.WaitGroup

	for i := 0; i < totalDays; i++ {
		wg.Add(1)
		go func(day int) {
			sem <- struct{}{}
			defer wg.Done()
			defer func() { <-sem }()

			content, err := p.Research.ResearchDay(ctx, ports.DayResearchRequest{
				Destination: req.Destination,
				Date:        req.StartDate.AddDate(0, 0, day),
				DayNumber:   day + 1,
				BudgetLevel: req.BudgetLevel,
				GroupSize:   req.GroupSize,
			})
			if err != nil {
				if !errors.Is(err, domain.ErrMissingDayPlanData) {
					obs.Warn(ctx, "research day %d failed: %v", day+1, err)
				}
				contents[day] = freeTimeDay()
				return
			}
			contents[day] = content
		}(i)
	}

	wg.Wait()
	return contents
}

func freeTimeDay() ports.DayContent {
	return ports.DayContent{Notes: "Free time - explore at your leisure"}
}

func journeyNotes(leg domain.Leg, from, to string) string {
	switch leg.Mode {
	case domain.ModeFly:
		return fmt.Sprintf("Fly from %s to the nearest airport, then transfer to %s.", from, to)
	case domain.ModeMultiModal:
		return fmt.Sprintf("Combine driving and flying from %s to %s (%.0fkm).", from, to, leg.DistanceKm)
	default:
		return fmt.Sprintf("Drive from %s to %s (%.0fkm). Consider traffic and rest stops.", from, to, leg.DistanceKm)
	}
}

func tripDays(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours()/24) + 1
}
