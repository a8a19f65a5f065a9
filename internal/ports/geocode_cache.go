package ports

import (
	"context"

	"github.com/pravin4/trip-planner/internal/domain"
)

// Port: persistent cache mapping place names to coordinates.
// Implementations match keys case-insensitively so warmed entries and
// runtime lookups agree.
type GeocodeCache interface {
	// Get returns the cached coordinate and whether it was present.
	Get(ctx context.Context, name string) (domain.Coordinate, bool, error)
	// Put stores a name -> coordinate mapping.
	Put(ctx context.Context, name string, c domain.Coordinate) error
}
