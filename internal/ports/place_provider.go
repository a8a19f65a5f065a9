package ports

import (
	"context"

	"github.com/pravin4/trip-planner/internal/domain"
)

// A point of interest near a coordinate.
type Place struct {
	Name       string
	Coordinate domain.Coordinate
	Category   string
}

// Contract for finding points of interest near a coordinate.
type PlaceProvider interface {
	// Nearby returns places within radiusKm of the given coordinate,
	// best matches first. An empty slice is a valid answer.
	Nearby(ctx context.Context, c domain.Coordinate, radiusKm float64) ([]Place, error)
}
