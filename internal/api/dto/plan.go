package dto

import (
	"fmt"
	"time"

	"github.com/pravin4/trip-planner/internal/domain"
)

const dateLayout = "2006-01-02"

type PlanRequest struct {
	Origin       string  `json:"origin" validate:"required"`
	Destination  string  `json:"destination" validate:"required"`
	StartDate    string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate      string  `json:"end_date" validate:"required,datetime=2006-01-02"`
	GroupSize    int     `json:"group_size" validate:"omitempty,min=1,max=20"`
	BudgetLevel  string  `json:"budget_level" validate:"omitempty,oneof=budget moderate luxury"`
	Budget       float64 `json:"budget" validate:"omitempty,gt=0"`
	OverrideMode string  `json:"override_mode" validate:"omitempty,oneof=drive multi_modal fly"`
}

// Dates parses the validated date strings. Call only after validation.
func (r PlanRequest) Dates() (start, end time.Time, err error) {
	start, err = time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return start, end, fmt.Errorf("parse start_date: %w", err)
	}
	end, err = time.Parse(dateLayout, r.EndDate)
	if err != nil {
		return start, end, fmt.Errorf("parse end_date: %w", err)
	}
	return start, end, nil
}

type CoordinateResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type WaypointResponse struct {
	Name                 string             `json:"name"`
	Coordinate           CoordinateResponse `json:"coordinate"`
	Kind                 string             `json:"kind"`
	SequenceIndex        int                `json:"sequence_index"`
	DistanceFromOriginKm float64            `json:"distance_from_origin_km"`
}

type CostBreakdownResponse struct {
	Transportation float64 `json:"transportation"`
	Accommodations float64 `json:"accommodations"`
	Activities     float64 `json:"activities"`
	Meals          float64 `json:"meals"`
	Miscellaneous  float64 `json:"miscellaneous"`
	Total          float64 `json:"total"`
}

type JourneyLegResponse struct {
	From       string                `json:"from"`
	To         string                `json:"to"`
	DistanceKm float64               `json:"distance_km"`
	Mode       string                `json:"mode"`
	Stops      []WaypointResponse    `json:"stops"`
	Cost       CostBreakdownResponse `json:"cost"`
	Notes      string                `json:"notes"`
}

type TripLogisticsResponse struct {
	Departure *JourneyLegResponse `json:"departure,omitempty"`
	Return    *JourneyLegResponse `json:"return,omitempty"`
}

type ActivityResponse struct {
	Name          string  `json:"name"`
	Category      string  `json:"category,omitempty"`
	DurationHours float64 `json:"duration_hours,omitempty"`
	Cost          float64 `json:"cost"`
}

type RestaurantResponse struct {
	Name          string  `json:"name"`
	Cuisine       string  `json:"cuisine,omitempty"`
	CostPerPerson float64 `json:"cost_per_person"`
}

type AccommodationResponse struct {
	Name          string  `json:"name"`
	Kind          string  `json:"kind,omitempty"`
	PricePerNight float64 `json:"price_per_night"`
}

type TransportSegmentResponse struct {
	From       string  `json:"from"`
	To         string  `json:"to"`
	Mode       string  `json:"mode"`
	DistanceKm float64 `json:"distance_km"`
	Notes      string  `json:"notes,omitempty"`
}

type DayPlanResponse struct {
	DayNumber      int                        `json:"day_number"`
	Date           string                     `json:"date"`
	DayType        string                     `json:"day_type"`
	Activities     []ActivityResponse         `json:"activities"`
	Restaurants    []RestaurantResponse       `json:"restaurants"`
	Accommodations []AccommodationResponse    `json:"accommodations"`
	Transportation []TransportSegmentResponse `json:"transportation,omitempty"`
	Notes          string                     `json:"notes,omitempty"`
}

type ItineraryResponse struct {
	StartingPoint string                 `json:"starting_point"`
	Destination   string                 `json:"destination"`
	DayPlans      []DayPlanResponse      `json:"day_plans"`
	CostBreakdown CostBreakdownResponse  `json:"cost_breakdown"`
	TotalCost     float64                `json:"total_cost"`
	TotalBudget   float64                `json:"total_budget,omitempty"`
	TripLogistics *TripLogisticsResponse `json:"trip_logistics,omitempty"`
	BudgetNotes   []string               `json:"budget_notes,omitempty"`
}

// FromItinerary maps the domain itinerary to the wire shape. Money values
// round to cents here so domain math stays full-precision.
func FromItinerary(it *domain.Itinerary) ItineraryResponse {
	res := ItineraryResponse{
		StartingPoint: it.StartingPoint,
		Destination:   it.Destination,
		DayPlans:      make([]DayPlanResponse, 0, len(it.DayPlans)),
		CostBreakdown: fromCostBreakdown(it.CostBreakdown),
		TotalCost:     domain.Round2(it.TotalCost),
		TotalBudget:   it.TotalBudget,
		BudgetNotes:   it.BudgetNotes,
	}

	for _, d := range it.DayPlans {
		res.DayPlans = append(res.DayPlans, fromDayPlan(d))
	}

	if it.TripLogistics != nil {
		res.TripLogistics = &TripLogisticsResponse{
			Departure: fromJourneyLeg(it.TripLogistics.Departure, it.StartingPoint, it.Destination),
			Return:    fromJourneyLeg(it.TripLogistics.Return, it.Destination, it.StartingPoint),
		}
	}

	return res
}

func fromDayPlan(d domain.DayPlan) DayPlanResponse {
	out := DayPlanResponse{
		DayNumber:      d.DayNumber,
		Date:           d.Date.Format(dateLayout),
		DayType:        string(d.DayType),
		Activities:     make([]ActivityResponse, 0, len(d.Activities)),
		Restaurants:    make([]RestaurantResponse, 0, len(d.Restaurants)),
		Accommodations: make([]AccommodationResponse, 0, len(d.Accommodations)),
		Notes:          d.Notes,
	}
	for _, a := range d.Activities {
		out.Activities = append(out.Activities, ActivityResponse{
			Name:          a.Name,
			Category:      a.Category,
			DurationHours: a.DurationHours,
			Cost:          domain.Round2(a.Cost),
		})
	}
	for _, r := range d.Restaurants {
		out.Restaurants = append(out.Restaurants, RestaurantResponse{
			Name:          r.Name,
			Cuisine:       r.Cuisine,
			CostPerPerson: domain.Round2(r.CostPerPerson),
		})
	}
	for _, a := range d.Accommodations {
		out.Accommodations = append(out.Accommodations, AccommodationResponse{
			Name:          a.Name,
			Kind:          a.Kind,
			PricePerNight: domain.Round2(a.PricePerNight),
		})
	}
	for _, t := range d.Transportation {
		out.Transportation = append(out.Transportation, TransportSegmentResponse{
			From:       t.From,
			To:         t.To,
			Mode:       string(t.Mode),
			DistanceKm: domain.Round2(t.Distance),
			Notes:      t.Notes,
		})
	}
	return out
}

func fromJourneyLeg(l *domain.JourneyLeg, from, to string) *JourneyLegResponse {
	if l == nil {
		return nil
	}
	out := &JourneyLegResponse{
		From:       from,
		To:         to,
		DistanceKm: domain.Round2(l.Leg.DistanceKm),
		Mode:       string(l.Leg.Mode),
		Stops:      make([]WaypointResponse, 0, len(l.Stops)),
		Cost:       fromCostBreakdown(l.Cost),
		Notes:      l.Notes,
	}
	for _, s := range l.Stops {
		out.Stops = append(out.Stops, WaypointResponse{
			Name: s.Label,
			Coordinate: CoordinateResponse{
				Lat: s.Coordinate.Lat,
				Lon: s.Coordinate.Lon,
			},
			Kind:                 string(s.Kind),
			SequenceIndex:        s.SequenceIndex,
			DistanceFromOriginKm: domain.Round2(s.DistanceFromOriginKm),
		})
	}
	return out
}

func fromCostBreakdown(c domain.CostBreakdown) CostBreakdownResponse {
	return CostBreakdownResponse{
		Transportation: domain.Round2(c.Transportation),
		Accommodations: domain.Round2(c.Accommodations),
		Activities:     domain.Round2(c.Activities),
		Meals:          domain.Round2(c.Meals),
		Miscellaneous:  domain.Round2(c.Miscellaneous),
		Total:          domain.Round2(c.Total()),
	}
}
