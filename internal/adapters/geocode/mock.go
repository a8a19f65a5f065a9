package geocode

import (
	"context"
	"fmt"

	"github.com/pravin4/trip-planner/internal/domain"
	"github.com/pravin4/trip-planner/internal/ports"
)

// MockGeocoder answers from a fixed table. Useful in tests and offline runs.
type MockGeocoder struct {
	m map[string]domain.Coordinate
}

func NewMockGeocoder(entries map[string]domain.Coordinate) *MockGeocoder {
	m := make(map[string]domain.Coordinate, len(entries))
	for name, c := range entries {
		m[name] = c
	}
	return &MockGeocoder{m: m}
}

func (g *MockGeocoder) Geocode(ctx context.Context, text string) (domain.Coordinate, error) {
	c, ok := g.m[text]
	if !ok {
		return domain.Coordinate{}, fmt.Errorf("mock geocode %q: %w", text, ports.ErrNotFound)
	}
	return c, nil
}
