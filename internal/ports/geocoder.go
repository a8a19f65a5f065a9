package ports

import (
	"context"
	"errors"

	"github.com/pravin4/trip-planner/internal/domain"
)

// Returned by providers when a lookup completed but produced no match.
var ErrNotFound = errors.New("not found")

// Contract for resolving a free-text place name to coordinates.
type Geocoder interface {
	// Geocode returns the best-match coordinate for the given text,
	// or ErrNotFound when the provider has no result.
	Geocode(ctx context.Context, text string) (domain.Coordinate, error)
}
