package places

import (
	"context"

	"github.com/pravin4/trip-planner/internal/domain"
	"github.com/pravin4/trip-planner/internal/geo"
	"github.com/pravin4/trip-planner/internal/ports"
)

// StaticPlaceProvider serves nearby lookups from a fixed table. It is
// the default when no places API is configured, and doubles as a test
// fake.
type StaticPlaceProvider struct {
	Places []ports.Place
}

// NewStaticPlaceProvider returns a provider seeded with a handful of
// well-known West Coast attractions.
func NewStaticPlaceProvider() *StaticPlaceProvider {
	return &StaticPlaceProvider{Places: []ports.Place{
		{Name: "Golden Gate Bridge Vista Point", Coordinate: domain.Coordinate{Lat: 37.8324, Lon: -122.4795}, Category: "viewpoint"},
		{Name: "Monterey Bay Aquarium", Coordinate: domain.Coordinate{Lat: 36.6182, Lon: -121.9018}, Category: "attraction"},
		{Name: "Bixby Creek Bridge", Coordinate: domain.Coordinate{Lat: 36.3714, Lon: -121.9017}, Category: "viewpoint"},
		{Name: "McWay Falls", Coordinate: domain.Coordinate{Lat: 36.1578, Lon: -121.6722}, Category: "attraction"},
		{Name: "Avenue of the Giants", Coordinate: domain.Coordinate{Lat: 40.3096, Lon: -123.9221}, Category: "attraction"},
		{Name: "Glass Beach", Coordinate: domain.Coordinate{Lat: 39.4527, Lon: -123.8137}, Category: "attraction"},
	}}
}

func (s *StaticPlaceProvider) Nearby(_ context.Context, c domain.Coordinate, radiusKm float64) ([]ports.Place, error) {
	var out []ports.Place
	for _, p := range s.Places {
		if geo.DistanceKm(c, p.Coordinate) <= radiusKm {
			out = append(out, p)
		}
	}
	return out, nil
}
