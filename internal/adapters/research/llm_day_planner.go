package research

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"

	"github.com/pravin4/trip-planner/internal/domain"
	"github.com/pravin4/trip-planner/internal/ports"
)

// LLMDayPlanner researches one itinerary day at a time through a chat
// model. The model is injected so callers pick the provider; the
// adapter only owns prompting and response parsing.
type LLMDayPlanner struct {
	model    model.BaseChatModel
	template prompt.ChatTemplate
}

func NewLLMDayPlanner(m model.BaseChatModel) *LLMDayPlanner {
	return &LLMDayPlanner{
		model: m,
		template: prompt.FromMessages(schema.FString,
			schema.SystemMessage(
				"You are a local travel researcher. You answer with a single JSON "+
					"object and nothing else. Schema: {\"activities\": [{\"name\", "+
					"\"category\", \"duration_hours\", \"cost\"}], \"restaurants\": "+
					"[{\"name\", \"cuisine\", \"cost_per_person\"}], "+
					"\"accommodations\": [{\"name\", \"kind\", "+
					"\"price_per_night\"}], \"notes\": string}. Costs are USD "+
					"numbers."),
			schema.UserMessage(
				"Plan day {day_number} of a trip in {destination} on {date} for "+
					"{group_size} people at a {budget_level} budget. Suggest 2-3 "+
					"activities, 2 restaurants and 1 accommodation."),
		),
	}
}

func (p *LLMDayPlanner) ResearchDay(ctx context.Context, req ports.DayResearchRequest) (ports.DayContent, error) {
	if p.model == nil {
		return ports.DayContent{}, fmt.Errorf("research day %d: no model configured: %w",
			req.DayNumber, domain.ErrMissingDayPlanData)
	}

	msgs, err := p.template.Format(ctx, map[string]any{
		"destination":  req.Destination,
		"date":         req.Date.Format("2006-01-02"),
		"day_number":   req.DayNumber,
		"group_size":   req.GroupSize,
		"budget_level": string(req.BudgetLevel),
	})
	if err != nil {
		return ports.DayContent{}, fmt.Errorf("format research prompt: %w", err)
	}

	resp, err := p.model.Generate(ctx, msgs)
	if err != nil {
		return ports.DayContent{}, fmt.Errorf("research day %d: %w", req.DayNumber, err)
	}

	content, err := parseDayContent(resp.Content)
	if err != nil {
		return ports.DayContent{}, fmt.Errorf("research day %d: %v: %w",
			req.DayNumber, err, domain.ErrMissingDayPlanData)
	}
	return content, nil
}

type dayResponse struct {
	Activities []struct {
		Name          string  `json:"name"`
		Category      string  `json:"category"`
		DurationHours float64 `json:"duration_hours"`
		Cost          float64 `json:"cost"`
	} `json:"activities"`
	Restaurants []struct {
		Name          string  `json:"name"`
		Cuisine       string  `json:"cuisine"`
		CostPerPerson float64 `json:"cost_per_person"`
	} `json:"restaurants"`
	Accommodations []struct {
		Name          string  `json:"name"`
		Kind          string  `json:"kind"`
		PricePerNight float64 `json:"price_per_night"`
	} `json:"accommodations"`
	Notes string `json:"notes"`
}

func parseDayContent(raw string) (ports.DayContent, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	if raw == "" {
		return ports.DayContent{}, fmt.Errorf("empty model response")
	}

	var parsed dayResponse
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return ports.DayContent{}, fmt.Errorf("unmarshal day content: %v", err)
	}
	if len(parsed.Activities) == 0 && len(parsed.Restaurants) == 0 && len(parsed.Accommodations) == 0 {
		return ports.DayContent{}, fmt.Errorf("model returned no day content")
	}

	out := ports.DayContent{Notes: parsed.Notes}
	for _, a := range parsed.Activities {
		out.Activities = append(out.Activities, domain.Activity{
			Name:          a.Name,
			Category:      a.Category,
			DurationHours: a.DurationHours,
			Cost:          a.Cost,
		})
	}
	for _, r := range parsed.Restaurants {
		out.Restaurants = append(out.Restaurants, domain.Restaurant{
			Name:          r.Name,
			Cuisine:       r.Cuisine,
			CostPerPerson: r.CostPerPerson,
		})
	}
	for _, a := range parsed.Accommodations {
		out.Accommodations = append(out.Accommodations, domain.Accommodation{
			Name:          a.Name,
			Kind:          a.Kind,
			PricePerNight: a.PricePerNight,
		})
	}
	return out, nil
}
