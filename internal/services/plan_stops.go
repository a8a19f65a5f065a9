package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/pravin4/trip-planner/internal/domain"
	"github.com/pravin4/trip-planner/internal/geo"
	"github.com/pravin4/trip-planner/internal/ports"
)

const (
	// Overland legs shorter than this get no interpolated waypoints.
	waypointTriggerKm = 200.0
	// Spacing of interpolated waypoints along longer legs.
	waypointSpacingKm = 100.0

	// Assumed cruise speed used to convert time cadences into distances.
	cruiseSpeedKmh = 80.0
	// Rest stop every 4 hours, attraction stop every 2.5 hours of driving.
	restStopIntervalKm       = 4.0 * cruiseSpeedKmh
	attractionStopIntervalKm = 2.5 * cruiseSpeedKmh

	// A time-based stop landing within this distance of an existing
	// waypoint is skipped, not duplicated.
	stopDedupToleranceKm = 10.0
)

// A documented stop on a predefined route, positioned by its along-route
// distance from the origin.
type NamedStop struct {
	Name       string
	Coordinate domain.Coordinate
	PositionKm float64
}

// NamedRoute matches origin/destination labels by lower-cased substring.
type NamedRoute struct {
	OriginContains      []string
	DestinationContains []string
	Stops               []NamedStop
}

func (r NamedRoute) matches(origin, destination string) bool {
	o := strings.ToLower(origin)
	d := strings.ToLower(destination)
	return containsAny(o, r.OriginContains) && containsAny(d, r.DestinationContains)
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// StopPlanner produces the ordered waypoint sequence for a classified leg.
// The named-route table is injected configuration data, not module state.
type StopPlanner struct {
	routes []NamedRoute
}

func NewStopPlanner(routes []NamedRoute) *StopPlanner {
	return &StopPlanner{routes: routes}
}

// PlanStops builds the waypoint sequence for a leg. Waypoint sources are
// applied in a fixed order so the output is bit-identical for identical
// inputs:
//
//  1. interpolated rest stops every 100 km for overland legs over 200 km
//  2. time-based rest (4 h) and attraction (2.5 h) stops at 80 km/h,
//     skipped within 10 km of an existing waypoint
//  3. predefined named stops for the origin/destination pair, merged by
//     documented route position
//
// Fly legs get no intermediate waypoints. The final sequence is renumbered
// 0..n-1 in travel order.
func (p *StopPlanner) PlanStops(leg domain.Leg, originLabel, destinationLabel string) []domain.Waypoint {
	if leg.Mode == domain.ModeFly {
		return []domain.Waypoint{}
	}

	var stops []domain.Waypoint

	if leg.DistanceKm > waypointTriggerKm {
		n := 0
		for d := waypointSpacingKm; d < leg.DistanceKm; d += waypointSpacingKm {
			n++
			stops = append(stops, domain.Waypoint{
				Coordinate:           geo.Interpolate(leg.Origin, leg.Destination, d/leg.DistanceKm),
				Label:                fmt.Sprintf("Rest stop %d", n),
				Kind:                 domain.KindRestStop,
				DistanceFromOriginKm: d,
			})
		}
	}

	for d := restStopIntervalKm; d < leg.DistanceKm; d += restStopIntervalKm {
		if nearExisting(stops, d) {
			continue
		}
		stops = append(stops, domain.Waypoint{
			Coordinate:           geo.Interpolate(leg.Origin, leg.Destination, d/leg.DistanceKm),
			Label:                "Rest stop - gas, food, bathroom",
			Kind:                 domain.KindRestStop,
			DistanceFromOriginKm: d,
		})
	}

	for d := attractionStopIntervalKm; d < leg.DistanceKm; d += attractionStopIntervalKm {
		if nearExisting(stops, d) {
			continue
		}
		stops = append(stops, domain.Waypoint{
			Coordinate:           geo.Interpolate(leg.Origin, leg.Destination, d/leg.DistanceKm),
			Label:                "Scenic or attraction stop",
			Kind:                 domain.KindAttractionStop,
			DistanceFromOriginKm: d,
		})
	}

	for _, named := range p.namedStops(originLabel, destinationLabel) {
		stops = append(stops, domain.Waypoint{
			Coordinate:           named.Coordinate,
			Label:                named.Name,
			Kind:                 domain.KindNamedCityStop,
			DistanceFromOriginKm: named.PositionKm,
		})
	}

	// Travel order, with a stable tie-breaker so equal positions keep a
	// deterministic ordering.
	slices.SortStableFunc(stops, func(a, b domain.Waypoint) int {
		if a.DistanceFromOriginKm < b.DistanceFromOriginKm {
			return -1
		}
		if a.DistanceFromOriginKm > b.DistanceFromOriginKm {
			return 1
		}
		return strings.Compare(a.Label, b.Label)
	})

	for i := range stops {
		stops[i].SequenceIndex = i
	}

	return stops
}

func (p *StopPlanner) namedStops(origin, destination string) []NamedStop {
	for _, route := range p.routes {
		if route.matches(origin, destination) {
			return route.Stops
		}
	}
	return nil
}

func nearExisting(stops []domain.Waypoint, d float64) bool {
	for _, s := range stops {
		diff := s.DistanceFromOriginKm - d
		if diff < 0 {
			diff = -diff
		}
		if diff <= stopDedupToleranceKm {
			return true
		}
	}
	return false
}

// DecorateStops asks the place provider for a point of interest near each
// attraction stop and relabels the stop with it. Provider failures are
// skipped silently; labels are enrichment, not planning input.
func DecorateStops(ctx context.Context, provider ports.PlaceProvider, stops []domain.Waypoint) {
	if provider == nil {
		return
	}
	for i := range stops {
		if stops[i].Kind != domain.KindAttractionStop {
			continue
		}
		places, err := provider.Nearby(ctx, stops[i].Coordinate, 5)
		if err != nil || len(places) == 0 {
			continue
		}
		stops[i].Label = places[0].Name
	}
}
